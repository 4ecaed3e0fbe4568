package lang

import (
	"slices"
	"strings"
)

// Vocabulary tables. Each word maps to the terminal kind the builder uses;
// the builder never looks at word text for these classes.
var (
	dayWords = map[string]Rule{
		"today":      RuleToday,
		"tomorrow":   RuleTomorrow,
		"overmorrow": RuleOvermorrow,
		"yesterday":  RuleYesterday,
	}

	specifierWords = map[string]Rule{
		"this": RuleThis,
		"next": RuleNext,
		"last": RuleLast,
	}

	unitWords = map[string]Rule{
		"year": RuleYear, "years": RuleYear, "yr": RuleYear, "yrs": RuleYear,
		"month": RuleMonth, "months": RuleMonth, "mo": RuleMonth, "mos": RuleMonth,
		"week": RuleWeek, "weeks": RuleWeek, "wk": RuleWeek, "wks": RuleWeek,
		"day": RuleDay, "days": RuleDay,
		"hour": RuleHour, "hours": RuleHour, "hr": RuleHour, "hrs": RuleHour,
		"minute": RuleMinute, "minutes": RuleMinute, "min": RuleMinute, "mins": RuleMinute,
		"second": RuleSecond, "seconds": RuleSecond, "sec": RuleSecond, "secs": RuleSecond,
	}

	weekdayWords = map[string]Rule{
		"monday": RuleMonday, "mon": RuleMonday,
		"tuesday": RuleTuesday, "tue": RuleTuesday, "tues": RuleTuesday,
		"wednesday": RuleWednesday, "wed": RuleWednesday,
		"thursday": RuleThursday, "thu": RuleThursday, "thur": RuleThursday, "thurs": RuleThursday,
		"friday": RuleFriday, "fri": RuleFriday,
		"saturday": RuleSaturday, "sat": RuleSaturday,
		"sunday": RuleSunday, "sun": RuleSunday,
	}

	monthWords = map[string]Rule{
		"january": RuleJanuary, "jan": RuleJanuary,
		"february": RuleFebruary, "feb": RuleFebruary,
		"march": RuleMarch, "mar": RuleMarch,
		"april": RuleApril, "apr": RuleApril,
		"may":  RuleMay,
		"june": RuleJune, "jun": RuleJune,
		"july": RuleJuly, "jul": RuleJuly,
		"august": RuleAugust, "aug": RuleAugust,
		"september": RuleSeptember, "sep": RuleSeptember, "sept": RuleSeptember,
		"october": RuleOctober, "oct": RuleOctober,
		"november": RuleNovember, "nov": RuleNovember,
		"december": RuleDecember, "dec": RuleDecember,
	}

	nowWords = map[string]Rule{"now": RuleNow}

	// keywords are the connectives and articles of the grammar.
	keywords = []string{
		"a", "after", "ago", "an", "and", "at", "before", "from", "in", "now",
		"of", "on", "the",
	}
)

// Vocabulary returns every word the grammar recognizes, sorted. It does not
// include numbers or ordinal words.
func Vocabulary() []string {
	words := slices.Clone(keywords)

	for _, table := range []map[string]Rule{
		dayWords, specifierWords, unitWords, weekdayWords, monthWords,
	} {
		for word := range table {
			words = append(words, word)
		}
	}

	for word := range unitOrdinals {
		words = append(words, word)
	}

	for word := range tensOrdinals {
		words = append(words, word)
	}

	for word := range tensCardinals {
		words = append(words, word)
	}

	slices.Sort(words)

	return slices.Compact(words)
}

// grammar is a backtracking recursive-descent recognizer. Each production
// method either consumes input and returns a node, or restores the position
// and returns nil.
type grammar struct {
	source   string
	toks     []Token
	pos      int
	furthest int
	expected map[string]struct{}
}

// parseTree tokenizes source and returns the syntax tree of the whole input.
// It fails with a [*ParseError] unless some production matches all of it.
func parseTree(source string) (*Node, error) {
	toks, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	return parseTokens(source, toks)
}

// parseTokens returns the syntax tree of toks, the tokens of source.
func parseTokens(source string, toks []Token) (*Node, error) {
	g := &grammar{
		source:   source,
		toks:     toks,
		expected: map[string]struct{}{},
	}

	if n := g.humanTime(); n != nil {
		return n, nil
	}

	return nil, g.error()
}

func (g *grammar) error() *ParseError {
	tok := g.toks[min(g.furthest, len(g.toks)-1)]

	exp := make([]string, 0, len(g.expected))
	for e := range g.expected {
		exp = append(exp, e)
	}

	slices.Sort(exp)

	return &ParseError{
		Source:   g.source,
		Column:   tok.Column,
		Found:    tok.String(),
		Expected: exp,
	}
}

func (g *grammar) peek() Token { return g.toks[g.pos] }

func (g *grammar) atEnd() bool { return g.peek().Type == TokenEOF }

// fail records that what was expected at the current position.
func (g *grammar) fail(what string) {
	switch {
	case g.pos > g.furthest:
		g.furthest = g.pos
		clear(g.expected)

		fallthrough

	case g.pos == g.furthest:
		g.expected[what] = struct{}{}
	}
}

// word consumes a word token equal to one of words.
func (g *grammar) word(words ...string) bool {
	tok := g.peek()
	if tok.Type == TokenWord && slices.Contains(words, tok.Value) {
		g.pos++

		return true
	}

	for _, w := range words {
		g.fail(`"` + w + `"`)
	}

	return false
}

// optional consumes one of words if present.
func (g *grammar) optional(words ...string) {
	tok := g.peek()
	if tok.Type == TokenWord && slices.Contains(words, tok.Value) {
		g.pos++
	}
}

// terminal consumes a word classified by table and returns its leaf node.
func (g *grammar) terminal(table map[string]Rule, what string) *Node {
	tok := g.peek()
	if tok.Type == TokenWord {
		if rule, ok := table[tok.Value]; ok {
			g.pos++

			return &Node{Rule: rule, Token: tok}
		}
	}

	g.fail(what)

	return nil
}

// token consumes a token of type typ and returns it as a leaf of kind rule.
func (g *grammar) token(typ TokenType, rule Rule) *Node {
	tok := g.peek()
	if tok.Type == typ {
		g.pos++

		return &Node{Rule: rule, Token: tok}
	}

	g.fail(typ.String())

	return nil
}

// nonterminal wraps children in a production node.
func nonterminal(rule Rule, alt int, children ...*Node) *Node {
	return &Node{Rule: rule, Alt: alt, Children: children}
}

// alternatives tries each production in order, returning the first that
// matches. When full is set, a match must also reach the end of input.
func (g *grammar) alternatives(full bool, alts ...func() *Node) *Node {
	mark := g.pos

	for _, alt := range alts {
		if n := alt(); n != nil {
			if !full || g.atEnd() {
				return n
			}

			g.fail(TokenEOF.String())
		}

		g.pos = mark
	}

	return nil
}

// HumanTime : DateTime | Ago | In | Date | Time | now.
func (g *grammar) humanTime() *Node {
	wrap := func(alt int, prod func() *Node) func() *Node {
		return func() *Node {
			if n := prod(); n != nil {
				return nonterminal(RuleHumanTime, alt, n)
			}

			return nil
		}
	}

	return g.alternatives(true,
		wrap(0, g.dateTime),
		wrap(1, g.ago),
		wrap(2, g.in),
		wrap(3, g.date),
		wrap(4, g.time),
		func() *Node {
			if n := g.terminal(nowWords, `"now"`); n != nil {
				return nonterminal(RuleHumanTime, 5, n)
			}

			return nil
		},
	)
}

// DateTime : Date ["at" | ","] Time | Time ["on" | ","] Date.
func (g *grammar) dateTime() *Node {
	return g.alternatives(false,
		func() *Node {
			d := g.date()
			if d == nil {
				return nil
			}

			g.optional("at")
			g.optionalComma()

			t := g.time()
			if t == nil {
				return nil
			}

			return nonterminal(RuleDateTime, 0, d, t)
		},
		func() *Node {
			t := g.time()
			if t == nil {
				return nil
			}

			g.optional("on")
			g.optionalComma()

			d := g.date()
			if d == nil {
				return nil
			}

			return nonterminal(RuleDateTime, 1, t, d)
		},
	)
}

// Ago : Duration "ago" | Duration "ago" "from" HumanTime |
// Duration "before" HumanTime.
func (g *grammar) ago() *Node {
	mark := g.pos

	d := g.duration()
	if d == nil {
		return nil
	}

	switch {
	case g.word("ago"):
		after := g.pos
		if g.word("from") {
			if h := g.humanTime(); h != nil {
				return nonterminal(RuleAgo, 1, d, h)
			}
		}

		g.pos = after

		return nonterminal(RuleAgo, 0, d)

	case g.word("before"):
		if h := g.humanTime(); h != nil {
			return nonterminal(RuleAgo, 2, d, h)
		}
	}

	g.pos = mark

	return nil
}

// In : "in" Duration.
func (g *grammar) in() *Node {
	mark := g.pos

	if g.word("in") {
		if d := g.duration(); d != nil {
			return nonterminal(RuleIn, 0, d)
		}
	}

	g.pos = mark

	return nil
}

// Date : ["the"] Ordinal TimeUnit "of" DateTimeReference |
// RelativeSpecifier ("week" | "week's") ["on"] Weekday |
// RelativeSpecifier DateUnit | RelativeSpecifier Weekday | Weekday |
// Num MonthName [","] Num | MonthName Num [","] Num | Num MonthName |
// MonthName Num | IsoDate | DayKeyword.
func (g *grammar) date() *Node {
	return g.alternatives(false,
		func() *Node { // 0
			g.optional("the")

			o := g.ordinal()
			if o == nil {
				return nil
			}

			u := g.timeUnit(false)
			if u == nil || !g.word("of") {
				return nil
			}

			r := g.reference()
			if r == nil {
				return nil
			}

			return nonterminal(RuleDate, 0, o, u, r)
		},
		func() *Node { // 1
			s := g.specifier()
			if s == nil || !g.word("week", "week's") {
				return nil
			}

			g.optional("on")

			w := g.weekday()
			if w == nil {
				return nil
			}

			return nonterminal(RuleDate, 1, s, w)
		},
		func() *Node { // 2
			s := g.specifier()
			if s == nil {
				return nil
			}

			u := g.timeUnit(true)
			if u == nil {
				return nil
			}

			return nonterminal(RuleDate, 2, s, u)
		},
		func() *Node { // 3
			s := g.specifier()
			if s == nil {
				return nil
			}

			w := g.weekday()
			if w == nil {
				return nil
			}

			return nonterminal(RuleDate, 3, s, w)
		},
		func() *Node { // 4
			if w := g.weekday(); w != nil {
				return nonterminal(RuleDate, 4, w)
			}

			return nil
		},
		func() *Node { // 5
			d := g.num()
			if d == nil {
				return nil
			}

			m := g.monthName()
			if m == nil {
				return nil
			}

			g.optionalComma()

			y := g.num()
			if y == nil {
				return nil
			}

			return nonterminal(RuleDate, 5, d, m, y)
		},
		func() *Node { // 6
			m := g.monthName()
			if m == nil {
				return nil
			}

			d := g.dayNum()
			if d == nil {
				return nil
			}

			g.optionalComma()

			y := g.num()
			if y == nil {
				return nil
			}

			return nonterminal(RuleDate, 6, m, d, y)
		},
		func() *Node { // 7
			d := g.num()
			if d == nil {
				return nil
			}

			m := g.monthName()
			if m == nil {
				return nil
			}

			return nonterminal(RuleDate, 7, d, m)
		},
		func() *Node { // 8
			m := g.monthName()
			if m == nil {
				return nil
			}

			d := g.dayNum()
			if d == nil {
				return nil
			}

			return nonterminal(RuleDate, 8, m, d)
		},
		func() *Node { // 9
			if i := g.isoDate(); i != nil {
				return nonterminal(RuleDate, 9, i)
			}

			return nil
		},
		func() *Node { // 10
			if k := g.dayKeyword(); k != nil {
				return nonterminal(RuleDate, 10, k)
			}

			return nil
		},
	)
}

// DayKeyword : "today" | "tomorrow" | "overmorrow" | "the day after tomorrow" |
// "yesterday".
func (g *grammar) dayKeyword() *Node {
	mark := g.pos

	if g.word("the") && g.word("day") && g.word("after") {
		tok := g.peek()
		if g.word("tomorrow") {
			return &Node{Rule: RuleOvermorrow, Token: tok}
		}
	}

	g.pos = mark

	return g.terminal(dayWords, "day keyword")
}

// IsoDate : YYYY "-" MM "-" DD.
func (g *grammar) isoDate() *Node {
	tok := g.peek()
	if tok.Type != TokenDate {
		g.fail(TokenDate.String())

		return nil
	}

	g.pos++

	return nonterminal(RuleIsoDate, 0, splitToken(tok, "-")...)
}

// Time : HH ":" MM | HH ":" MM ":" SS.
func (g *grammar) time() *Node {
	tok := g.peek()
	if tok.Type != TokenClock {
		g.fail(TokenClock.String())

		return nil
	}

	g.pos++

	children := splitToken(tok, ":")

	return nonterminal(RuleTime, len(children)-2, children...)
}

// splitToken splits a compound numeric token into Num leaves.
func splitToken(tok Token, sep string) []*Node {
	parts := strings.Split(tok.Value, sep)
	nodes := make([]*Node, len(parts))
	offset := 0

	for i, p := range parts {
		nodes[i] = &Node{Rule: RuleNum, Token: Token{
			Type:   TokenNumber,
			Value:  p,
			Column: tok.Column + offset,
		}}
		offset += len(p) + len(sep)
	}

	return nodes
}

// Duration : Quantifier {["and" | ","] Quantifier} | TimeUnit.
func (g *grammar) duration() *Node {
	q := g.quantifier()
	if q == nil {
		if u := g.timeUnit(false); u != nil {
			return nonterminal(RuleDuration, 1, u)
		}

		return nil
	}

	qs := []*Node{q}

	for {
		mark := g.pos

		g.optional("and")
		g.optionalComma()

		next := g.quantifier()
		if next == nil {
			g.pos = mark

			break
		}

		qs = append(qs, next)
	}

	return nonterminal(RuleDuration, 0, qs...)
}

// Quantifier : Num TimeUnit | ("a" | "an") TimeUnit.
func (g *grammar) quantifier() *Node {
	return g.alternatives(false,
		func() *Node {
			n := g.num()
			if n == nil {
				return nil
			}

			u := g.timeUnit(false)
			if u == nil {
				return nil
			}

			return nonterminal(RuleQuantifier, 0, n, u)
		},
		func() *Node {
			if !g.word("a", "an") {
				return nil
			}

			u := g.timeUnit(false)
			if u == nil {
				return nil
			}

			return nonterminal(RuleQuantifier, 1, u)
		},
	)
}

// Ordinal : "last" | OrdinalText.
//
// OrdinalText is any digit ordinal or any word composed of ordinal
// vocabulary; whether it denotes a number is decided by the builder.
func (g *grammar) ordinal() *Node {
	tok := g.peek()

	switch {
	case tok.Type == TokenWord && tok.Value == "last":
		g.pos++

		return nonterminal(RuleOrdinal, 0, &Node{Rule: RuleLast, Token: tok})

	case tok.Type == TokenOrdinal,
		tok.Type == TokenWord && isOrdinalWord(tok.Value):
		g.pos++

		return nonterminal(RuleOrdinal, 1, &Node{Rule: RuleOrdinalText, Token: tok})
	}

	g.fail("ordinal")

	return nil
}

// DateTimeReference : MonthSpec ["of"] YearSpec | MonthSpec |
// Duration "ago" | RelativeSpecifier DateUnit | ["the"] TimeUnit |
// DayKeyword | "now".
func (g *grammar) reference() *Node {
	return g.alternatives(false,
		func() *Node { // 0
			m := g.monthSpec(true)
			if m == nil {
				return nil
			}

			g.optional("of")

			y := g.yearSpec()
			if y == nil {
				return nil
			}

			return nonterminal(RuleReference, 0, m, y)
		},
		func() *Node { // 1
			if m := g.monthSpec(false); m != nil {
				return nonterminal(RuleReference, 1, m)
			}

			return nil
		},
		func() *Node { // 2
			d := g.duration()
			if d == nil || !g.word("ago") {
				return nil
			}

			return nonterminal(RuleReference, 2, d)
		},
		func() *Node { // 3
			s := g.specifier()
			if s == nil {
				return nil
			}

			u := g.timeUnit(true)
			if u == nil {
				return nil
			}

			return nonterminal(RuleReference, 3, s, u)
		},
		func() *Node { // 4
			g.optional("the")

			if u := g.timeUnit(false); u != nil {
				return nonterminal(RuleReference, 4, u)
			}

			return nil
		},
		func() *Node { // 5
			if k := g.dayKeyword(); k != nil {
				return nonterminal(RuleReference, 5, k)
			}

			return nil
		},
		func() *Node { // 6
			if n := g.terminal(nowWords, `"now"`); n != nil {
				return nonterminal(RuleReference, 6, n)
			}

			return nil
		},
	)
}

// MonthSpec : ["the"] "month" | MonthName | RelativeSpecifier MonthName |
// RelativeSpecifier "month".
//
// The last alternate is only accepted when a YearSpec follows (withYear),
// otherwise "next month" is a relative time unit.
func (g *grammar) monthSpec(withYear bool) *Node {
	alts := []func() *Node{
		func() *Node { // 0
			g.optional("the")

			if g.word("month") {
				return nonterminal(RuleMonthSpec, 0)
			}

			return nil
		},
		func() *Node { // 1
			if m := g.monthName(); m != nil {
				return nonterminal(RuleMonthSpec, 1, m)
			}

			return nil
		},
		func() *Node { // 2
			s := g.specifier()
			if s == nil {
				return nil
			}

			m := g.monthName()
			if m == nil {
				return nil
			}

			return nonterminal(RuleMonthSpec, 2, s, m)
		},
	}

	if withYear {
		alts = append(alts, func() *Node { // 3
			s := g.specifier()
			if s == nil || !g.word("month") {
				return nil
			}

			return nonterminal(RuleMonthSpec, 3, s)
		})
	}

	return g.alternatives(false, alts...)
}

// YearSpec : RelativeSpecifier "year" | Num.
func (g *grammar) yearSpec() *Node {
	return g.alternatives(false,
		func() *Node {
			s := g.specifier()
			if s == nil || !g.word("year") {
				return nil
			}

			return nonterminal(RuleYearSpec, 0, s)
		},
		func() *Node {
			if n := g.num(); n != nil {
				return nonterminal(RuleYearSpec, 1, n)
			}

			return nil
		},
	)
}

// RelativeSpecifier : "this" | "next" | "last".
func (g *grammar) specifier() *Node {
	if t := g.terminal(specifierWords, "relative specifier"); t != nil {
		return nonterminal(RuleRelativeSpecifier, 0, t)
	}

	return nil
}

// TimeUnit : "year" | "month" | "week" | "day" | "hour" | "minute" | "second".
//
// DateUnit restricts TimeUnit to year through day (dateOnly).
func (g *grammar) timeUnit(dateOnly bool) *Node {
	mark := g.pos

	t := g.terminal(unitWords, "time unit")
	if t == nil {
		return nil
	}

	if dateOnly && !slices.Contains([]Rule{RuleYear, RuleMonth, RuleWeek, RuleDay}, t.Rule) {
		g.pos = mark
		g.fail("date unit")

		return nil
	}

	return nonterminal(RuleTimeUnit, 0, t)
}

// Weekday : "monday" | ... | "sunday".
func (g *grammar) weekday() *Node {
	if t := g.terminal(weekdayWords, "weekday"); t != nil {
		return nonterminal(RuleWeekday, 0, t)
	}

	return nil
}

// MonthName : "january" | ... | "december".
func (g *grammar) monthName() *Node {
	if t := g.terminal(monthWords, "month name"); t != nil {
		return nonterminal(RuleMonthName, 0, t)
	}

	return nil
}

// Num : digit {digit}.
func (g *grammar) num() *Node { return g.token(TokenNumber, RuleNum) }

// dayNum is a Num of at most two digits, used where a day of month follows a
// month name so that "march 2025" is not read as day 2025.
func (g *grammar) dayNum() *Node {
	tok := g.peek()
	if tok.Type == TokenNumber && len(tok.Value) <= 2 {
		g.pos++

		return &Node{Rule: RuleNum, Token: tok}
	}

	g.fail("day of month")

	return nil
}

func (g *grammar) optionalComma() {
	if g.peek().Type == TokenComma {
		g.pos++
	}
}
