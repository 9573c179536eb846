package history

// Item declares one metric a plugin wants charted.
type Item struct {
	// Name is the series key, or the suffix shared by a family of keys
	// such as "tx" for "eth0_tx" and "wlan0_tx".
	Name string `yaml:"name" mapstructure:"name"`

	// Color is a hex display color like "#FF0000". Empty means white.
	Color string `yaml:"color,omitempty" mapstructure:"color"`

	// YUnit is appended to the y-axis label as " (unit)".
	YUnit string `yaml:"y_unit,omitempty" mapstructure:"y_unit"`
}
