// Package profile starts optional runtime profiling of the humandate
// command with [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof ./...
//	humandate --pprof-mode cpu "next friday"
//	go tool pprof -http=: "$XDG_CACHE_HOME/humandate/pprof/cpu.pprof"
//
// Without the tag [Modes] is empty and [Profiler.Start] does nothing. With
// it, the [net/http/pprof] handlers are also registered on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
