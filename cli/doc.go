// Package cli contains the command line interface of humandate.
//
// # Usage
//
// Without a command, the arguments form a phrase to resolve:
//
//	humandate next friday
//	humandate --now 2024-01-15T12:00:00 --week-start monday 1st day of last week
//	humandate ast -o tree 10:00 on friday
//	humandate eval 'days("today", "first day of next month")'
//	humandate repl
//
// # Configuration
//
// Flags are read from config.yaml and config.json in the configuration
// directory (for example ~/.config/humandate). YAML keys are flag names, and
// nested mappings join with hyphens:
//
//	log:
//	  level: debug
//	week-start: monday
//
// The init command writes the current flags to config.yaml. Command-line
// flags override configured values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output on terminals
//
// Logger flags are applied before the rest of the command line is parsed.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o humandate .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/humandate/pprof)
package cli
