// Package cli implements the glancehist command-line interface.
//
// Each cobra command is a thin wrapper around a function taking an options
// struct and an io.Writer, so tests drive the commands without a terminal:
//
//	glancehist graph      - Sample N times, then write the charts
//	glancehist record     - Sample until interrupted, rendering periodically
//	glancehist plugins    - List plugins and their charted items
//	glancehist init       - Create .glancehist.yaml
//	glancehist version    - Print version information
//
// graph and record share a session: the loaded config, a history store, a
// collector feeding it and a renderer drawing it. Flags given on the
// command line (--output, --backend, --interval, --plugins, --reset) are
// applied on top of the config before it is validated.
package cli
