// Package render draws the recorded history of monitoring plugins into PNG
// charts.
//
// For each plugin the Renderer resolves every declared item against the
// plugin's history table before drawing anything:
//
//	exact   item "user" and key "user"           -> curve on glances_cpu.png
//	family  item "tx" and keys eth0_tx, eth1_tx  -> glances_network_tx.png, one row per key
//	none    no matching key                      -> skipped
//
// The renderer takes its plotting engine at construction. When the engine
// is unavailable, Render and Reset do nothing and report so through their
// return values.
package render
