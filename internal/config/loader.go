package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".glancehist.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/glancehist"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. GLANCEHIST_OUTPUT_DIR.
	EnvPrefix = "GLANCEHIST"
	// DotEnvFile is read from the working directory before loading.
	DotEnvFile = ".env"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'glancehist init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .glancehist.yaml in current directory
// 3. .glancehist.yaml in parent directories (stops at git root or home)
// 4. ~/.config/glancehist/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	if path := findUpward(cwd, home); path != "" {
		return path, nil
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUpward looks for ConfigFileName in dir and its parents. It stops at the
// first git root, below home, or at the filesystem root.
func findUpward(dir, home string) string {
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads config from the found path, or returns defaults if not
// found. Environment overrides apply either way.
func LoadOrDefault(explicit string) (*Config, string, error) {
	LoadDotEnv("")

	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// LoadDotEnv reads KEY=value pairs from a .env file in dir (the working
// directory when empty) into the process environment. Variables already set
// win. A missing file is not an error.
func LoadDotEnv(dir string) bool {
	path := filepath.Join(dir, DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return godotenv.Load(path) == nil
}

// newViper returns a viper instance with defaults and GLANCEHIST_* env
// overrides bound.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// GLANCEHIST_PLUGINS="cpu, mem" arrives as one string
	cfg.Plugins = splitList(strings.Join(cfg.Plugins, ","))

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.OutputDir = ExpandTilde(Expand(cfg.OutputDir))

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it even when
// the file leaves it out.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("history_size", def.HistorySize)
	v.SetDefault("interval", def.Interval.String())
	v.SetDefault("plugins", def.Plugins)
	v.SetDefault("chart.width", def.Chart.Width)
	v.SetDefault("chart.height", def.Chart.Height)
	v.SetDefault("chart.row_height", def.Chart.RowHeight)
	v.SetDefault("chart.dpi", def.Chart.DPI)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
