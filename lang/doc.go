// Package lang parses English date and time expressions and resolves them
// against a reference instant.
//
// Resolution is a pure function of the text, the reference instant, and a
// [Config]. Nothing reads the system clock and nothing is shared between
// calls, so concurrent use needs no locking.
//
// # Grammar
//
// Input is lowercased and trimmed first. Informal EBNF, alternates tried in
// order:
//
//	HumanTime   → DateTime | Ago | In | Date | Time | "now"
//	DateTime    → Date ["at" | ","] Time | Time ["on" | ","] Date
//	Ago         → Duration "ago" ["from" HumanTime] | Duration "before" HumanTime
//	In          → "in" Duration
//	Date        → ["the"] Ordinal TimeUnit "of" Reference
//	            | Specifier ("week" | "week's") ["on"] Weekday
//	            | Specifier DateUnit | Specifier Weekday | Weekday
//	            | Num MonthName [","] Num | MonthName Num [","] Num
//	            | Num MonthName | MonthName Num
//	            | YYYY-MM-DD | DayKeyword
//	Reference   → MonthSpec ["of"] YearSpec | MonthSpec | Duration "ago"
//	            | Specifier DateUnit | ["the"] TimeUnit | DayKeyword | "now"
//	MonthSpec   → ["the"] "month" | MonthName | Specifier MonthName
//	            | Specifier "month"
//	YearSpec    → Specifier "year" | Num
//	Time        → HH:MM | HH:MM:SS
//	Duration    → Quantifier {["and" | ","] Quantifier} | TimeUnit
//	Quantifier  → Num TimeUnit | ("a" | "an") TimeUnit
//	Ordinal     → "last" | 1st | 22nd | "first" … "twentieth" | "twenty-first" …
//	Specifier   → "this" | "next" | "last"
//	DayKeyword  → "today" | "tomorrow" | "overmorrow" | "the day after tomorrow"
//	            | "yesterday"
//
// # Example
//
//	next friday                  → 2024-01-19
//	in 3 days                    → 2024-01-18 12:00:00
//	2 days before next friday    → 2024-01-17 12:00:00
//	first day of next month      → 2024-02-01
//	last day of february 2024    → 2024-02-29
//	tomorrow at 9:30             → 2024-01-16 09:30:00
//
// with a reference instant of Monday 2024-01-15 12:00:00.
//
// # Errors
//
// Text that matches no production fails with a [*ParseError]. Text that
// parses but names no representable value fails with a [*ProcessingError]
// listing every failure: a combined date and time reports both halves.
// Failures of the builder itself match [ErrInternal].
package lang
