// Package log is a small leveled logger over [log/slog].
//
// Settings are fixed when a [Logger] is made and changed by functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("resolved", slog.String("text", "next friday"))
//
// Attributes are typed [slog.Attr] values rather than alternating keys and
// values. [Logger.With] adds attributes to every later message.
//
// Pretty output, the default, colors keys and values when the writer is a
// terminal and prints JSON records one key per line. Otherwise the
// [slog.JSONHandler] or [slog.TextHandler] is used.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and logs each grammar decision of
// the date parser. Messages below the configured level are discarded.
//
// # Package-level logging
//
// The functions [Info], [Debug], and the rest write to a default logger on
// standard output, configured with [Config]. Functions without a context
// argument use [DefaultContextProvider].
package log
