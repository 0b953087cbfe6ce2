// Package cli contains the command line interface for json2kdl.
//
// # Usage
//
//	json2kdl [flags] <input> <output>
//
// Either path may be "-" for stdin or stdout. The output is written only
// after the whole document converts; a failed run leaves an existing output
// file untouched.
//
// # Conversion Options
//
//   - --from: Input notation (auto, json, yaml). auto selects YAML for
//     .yaml and .yml inputs and JSON otherwise.
//   - --where: Expression selecting the nodes to convert, e.g.
//     'name != "debug" && depth < 3'
//   - --indent: Spaces per nesting level (default 4)
//   - --color: Colorize KDL written to stdout (auto, always, never)
//   - --diff: Print a line diff against the existing output and fail if
//     they differ, without writing anything
//
// # Configuration Files
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (for example ~/.config/json2kdl). YAML keys may use
// hyphens or underscores, and nested mappings join with a hyphen:
//
//	log:
//	  level: debug
//	indent: 2
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/json2kdl/pprof)
//
// # Examples
//
//	# Convert a file
//	json2kdl nodes.json nodes.kdl
//
//	# Filter and print with color
//	json2kdl --where 'type != nil' nodes.yaml -
//
//	# Check a generated file in CI
//	json2kdl --diff nodes.json nodes.kdl
package cli
