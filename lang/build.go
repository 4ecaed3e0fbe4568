package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"time"
)

// DefaultMaxDepth is the default limit on nested expressions, such as the
// origin of "2 days before 3 weeks before friday".
const DefaultMaxDepth = 16

// builder converts a syntax tree into an expression tree. Every production
// method switches on the alternate that matched; an alternate the grammar
// cannot produce is an internal error.
type builder struct {
	depth    int
	maxDepth int
}

// buildAST returns the expression tree of the syntax tree rooted at root.
// Text nested deeper than maxDepth is unparseable. Other failures are
// internal errors: the grammar accepted text the builder cannot represent.
func buildAST(root *Node, maxDepth int) (Expr, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	b := &builder{maxDepth: maxDepth}

	e, err := b.humanTime(root)
	if errors.Is(err, ErrMaxDepthExceeded) {
		return nil, ErrUnparseable.Wrap(err)
	}

	if err != nil {
		return nil, ErrInternal.Wrap(ErrBuildAST.Wrap(err))
	}

	return e, nil
}

func (b *builder) expect(n *Node, rule Rule) error {
	if n == nil {
		return ErrUnexpectedNode.With(slog.String("want", rule.String()))
	}

	if n.Rule != rule {
		return ErrUnexpectedNode.With(
			slog.String("want", rule.String()),
			slog.String("got", n.Rule.String()),
		)
	}

	return nil
}

func invalidAlternate(n *Node) error {
	return ErrInvalidAlternate.With(
		slog.String("rule", n.Rule.String()),
		slog.Int("alternate", n.Alt),
	)
}

// HumanTime : DateTime | Ago | In | Date | Time | now.
func (b *builder) humanTime(n *Node) (Expr, error) {
	if err := b.expect(n, RuleHumanTime); err != nil {
		return nil, err
	}

	b.depth++
	defer func() { b.depth-- }()

	if b.depth > b.maxDepth {
		return nil, ErrMaxDepthExceeded.With(slog.Int("max", b.maxDepth))
	}

	c := n.Child(0)

	switch n.Alternate() {
	case 0:
		return b.dateTime(c)

	case 1:
		return b.ago(c)

	case 2:
		if err := b.expect(c, RuleIn); err != nil {
			return nil, err
		}

		d, err := b.duration(c.Child(0))
		if err != nil {
			return nil, err
		}

		return &InExpr{Duration: d}, nil

	case 3:
		d, err := b.date(c)
		if err != nil {
			return nil, err
		}

		return &DateExpr{Date: d}, nil

	case 4:
		t, err := b.time(c)
		if err != nil {
			return nil, err
		}

		return &TimeExpr{Time: t}, nil

	case 5:
		if err := b.expect(c, RuleNow); err != nil {
			return nil, err
		}

		return Now{}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// DateTime : Date ["at" | ","] Time | Time ["on" | ","] Date.
func (b *builder) dateTime(n *Node) (Expr, error) {
	if err := b.expect(n, RuleDateTime); err != nil {
		return nil, err
	}

	var dn, tn *Node

	switch n.Alternate() {
	case 0:
		dn, tn = n.Child(0), n.Child(1)
	case 1:
		tn, dn = n.Child(0), n.Child(1)
	default:
		return nil, invalidAlternate(n)
	}

	d, err := b.date(dn)
	if err != nil {
		return nil, err
	}

	t, err := b.time(tn)
	if err != nil {
		return nil, err
	}

	return &DateTimeExpr{Date: d, Time: t}, nil
}

// Ago : Duration "ago" | Duration "ago" "from" HumanTime |
// Duration "before" HumanTime.
func (b *builder) ago(n *Node) (Expr, error) {
	if err := b.expect(n, RuleAgo); err != nil {
		return nil, err
	}

	d, err := b.duration(n.Child(0))
	if err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0:
		return &AgoExpr{Duration: d}, nil

	case 1, 2:
		from, err := b.humanTime(n.Child(1))
		if err != nil {
			return nil, err
		}

		return &AgoExpr{Duration: d, From: from}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// Date : ["the"] Ordinal TimeUnit "of" DateTimeReference |
// RelativeSpecifier ("week" | "week's") ["on"] Weekday |
// RelativeSpecifier DateUnit | RelativeSpecifier Weekday | Weekday |
// Num MonthName [","] Num | MonthName Num [","] Num | Num MonthName |
// MonthName Num | IsoDate | DayKeyword.
func (b *builder) date(n *Node) (Date, error) {
	if err := b.expect(n, RuleDate); err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0:
		o, err := b.ordinal(n.Child(0))
		if err != nil {
			return nil, err
		}

		u, err := b.timeUnit(n.Child(1))
		if err != nil {
			return nil, err
		}

		r, err := b.reference(n.Child(2))
		if err != nil {
			return nil, err
		}

		return OrdinalUnitOf{Ordinal: o, Unit: u, Reference: r}, nil

	case 1, 3:
		s, err := b.specifier(n.Child(0))
		if err != nil {
			return nil, err
		}

		w, err := b.weekday(n.Child(1))
		if err != nil {
			return nil, err
		}

		if n.Alternate() == 1 {
			return RelativeWeekWeekday{Specifier: s, Weekday: w}, nil
		}

		return RelativeWeekday{Specifier: s, Weekday: w}, nil

	case 2:
		return b.relativeUnit(n.Child(0), n.Child(1))

	case 4:
		w, err := b.weekday(n.Child(0))
		if err != nil {
			return nil, err
		}

		return UpcomingWeekday{Weekday: w}, nil

	case 5, 6:
		dn, mn := n.Child(0), n.Child(1)
		if n.Alternate() == 6 {
			dn, mn = mn, dn
		}

		day, month, err := b.dayMonth(dn, mn)
		if err != nil {
			return nil, err
		}

		year, err := b.num(n.Child(2))
		if err != nil {
			return nil, err
		}

		return DayMonthYear{Day: day, Month: month, Year: year}, nil

	case 7, 8:
		dn, mn := n.Child(0), n.Child(1)
		if n.Alternate() == 8 {
			dn, mn = mn, dn
		}

		day, month, err := b.dayMonth(dn, mn)
		if err != nil {
			return nil, err
		}

		return DayMonth{Day: day, Month: month}, nil

	case 9:
		return b.isoDate(n.Child(0))

	case 10:
		return b.relativeDay(n.Child(0))

	default:
		return nil, invalidAlternate(n)
	}
}

func (b *builder) dayMonth(dn, mn *Node) (int, time.Month, error) {
	day, err := b.num(dn)
	if err != nil {
		return 0, 0, err
	}

	month, err := b.monthName(mn)
	if err != nil {
		return 0, 0, err
	}

	return day, month, nil
}

func (b *builder) relativeUnit(sn, un *Node) (RelativeUnit, error) {
	s, err := b.specifier(sn)
	if err != nil {
		return RelativeUnit{}, err
	}

	u, err := b.timeUnit(un)
	if err != nil {
		return RelativeUnit{}, err
	}

	return RelativeUnit{Specifier: s, Unit: u}, nil
}

// IsoDate : YYYY "-" MM "-" DD.
func (b *builder) isoDate(n *Node) (Date, error) {
	if err := b.expect(n, RuleIsoDate); err != nil {
		return nil, err
	}

	var f [3]int

	for i := range f {
		v, err := b.num(n.Child(i))
		if err != nil {
			return nil, err
		}

		f[i] = v
	}

	return IsoDate{Year: f[0], Month: f[1], Day: f[2]}, nil
}

// DayKeyword : "today" | "tomorrow" | "overmorrow" | "yesterday".
func (b *builder) relativeDay(n *Node) (RelativeDay, error) {
	if n == nil {
		return 0, ErrUnexpectedNode
	}

	switch n.Rule {
	case RuleToday:
		return Today, nil
	case RuleTomorrow:
		return Tomorrow, nil
	case RuleOvermorrow:
		return Overmorrow, nil
	case RuleYesterday:
		return Yesterday, nil
	default:
		return 0, ErrUnexpectedNode.With(slog.String("got", n.Rule.String()))
	}
}

// DateTimeReference : MonthSpec ["of"] YearSpec | MonthSpec |
// Duration "ago" | RelativeSpecifier DateUnit | ["the"] TimeUnit |
// DayKeyword | "now".
func (b *builder) reference(n *Node) (Reference, error) {
	if err := b.expect(n, RuleReference); err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0, 1:
		m, err := b.monthSpec(n.Child(0))
		if err != nil {
			return nil, err
		}

		if n.Alternate() == 1 {
			return MonthYear{Month: m}, nil
		}

		y, err := b.yearSpec(n.Child(1))
		if err != nil {
			return nil, err
		}

		return MonthYear{Month: m, Year: y}, nil

	case 2:
		d, err := b.duration(n.Child(0))
		if err != nil {
			return nil, err
		}

		return AgoRef{Duration: d}, nil

	case 3:
		return b.relativeUnit(n.Child(0), n.Child(1))

	case 4:
		u, err := b.timeUnit(n.Child(0))
		if err != nil {
			return nil, err
		}

		return TheUnit{Unit: u}, nil

	case 5:
		return b.relativeDay(n.Child(0))

	case 6:
		if err := b.expect(n.Child(0), RuleNow); err != nil {
			return nil, err
		}

		return Now{}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// MonthSpec : ["the"] "month" | MonthName | RelativeSpecifier MonthName |
// RelativeSpecifier "month".
func (b *builder) monthSpec(n *Node) (MonthSpec, error) {
	if err := b.expect(n, RuleMonthSpec); err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0:
		return CurrentMonth{}, nil

	case 1:
		m, err := b.monthName(n.Child(0))
		if err != nil {
			return nil, err
		}

		return AbsoluteMonth{Month: m}, nil

	case 2:
		s, err := b.specifier(n.Child(0))
		if err != nil {
			return nil, err
		}

		m, err := b.monthName(n.Child(1))
		if err != nil {
			return nil, err
		}

		return RelativeMonth{Specifier: s, Month: m}, nil

	case 3:
		s, err := b.specifier(n.Child(0))
		if err != nil {
			return nil, err
		}

		return RelativeCurrentMonth{Specifier: s}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// YearSpec : RelativeSpecifier "year" | Num.
func (b *builder) yearSpec(n *Node) (YearSpec, error) {
	if err := b.expect(n, RuleYearSpec); err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0:
		s, err := b.specifier(n.Child(0))
		if err != nil {
			return nil, err
		}

		return RelativeYear{Specifier: s}, nil

	case 1:
		y, err := b.num(n.Child(0))
		if err != nil {
			return nil, err
		}

		return AbsoluteYear{Year: y}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// Time : HH ":" MM | HH ":" MM ":" SS.
func (b *builder) time(n *Node) (Time, error) {
	if err := b.expect(n, RuleTime); err != nil {
		return nil, err
	}

	if alt := n.Alternate(); alt < 0 || alt > 1 {
		return nil, invalidAlternate(n)
	}

	var f [3]int

	for i := range n.Alternate() + 2 {
		v, err := b.num(n.Child(i))
		if err != nil {
			return nil, err
		}

		f[i] = v
	}

	switch n.Alternate() {
	case 0:
		return HourMinute{Hour: f[0], Minute: f[1]}, nil
	case 1:
		return HourMinuteSecond{Hour: f[0], Minute: f[1], Second: f[2]}, nil
	default:
		return nil, invalidAlternate(n)
	}
}

// Duration : Quantifier {["and" | ","] Quantifier} | TimeUnit.
func (b *builder) duration(n *Node) (Duration, error) {
	if err := b.expect(n, RuleDuration); err != nil {
		return nil, err
	}

	switch n.Alternate() {
	case 0:
		d := make(Duration, 0, len(n.Children))

		for _, c := range n.Children {
			q, err := b.quantifier(c)
			if err != nil {
				return nil, err
			}

			d = append(d, q)
		}

		return d, nil

	case 1:
		u, err := b.timeUnit(n.Child(0))
		if err != nil {
			return nil, err
		}

		return Duration{{Count: 1, Unit: u}}, nil

	default:
		return nil, invalidAlternate(n)
	}
}

// Quantifier : Num TimeUnit | ("a" | "an") TimeUnit.
func (b *builder) quantifier(n *Node) (Quantifier, error) {
	if err := b.expect(n, RuleQuantifier); err != nil {
		return Quantifier{}, err
	}

	switch n.Alternate() {
	case 0:
		c, err := b.num(n.Child(0))
		if err != nil {
			return Quantifier{}, err
		}

		u, err := b.timeUnit(n.Child(1))
		if err != nil {
			return Quantifier{}, err
		}

		return Quantifier{Count: c, Unit: u}, nil

	case 1:
		u, err := b.timeUnit(n.Child(0))
		if err != nil {
			return Quantifier{}, err
		}

		return Quantifier{Count: 1, Unit: u}, nil

	default:
		return Quantifier{}, invalidAlternate(n)
	}
}

// Ordinal : "last" | OrdinalText.
func (b *builder) ordinal(n *Node) (Ordinal, error) {
	if err := b.expect(n, RuleOrdinal); err != nil {
		return Ordinal{}, err
	}

	switch n.Alternate() {
	case 0:
		return LastOrdinal(), nil

	case 1:
		c := n.Child(0)
		if err := b.expect(c, RuleOrdinalText); err != nil {
			return Ordinal{}, err
		}

		v, ok := decodeOrdinal(c.Text())
		if !ok {
			return Ordinal{}, ErrInvalidOrdinal.With(slog.String("text", c.Text()))
		}

		return Nth(v), nil

	default:
		return Ordinal{}, invalidAlternate(n)
	}
}

// RelativeSpecifier : "this" | "next" | "last".
func (b *builder) specifier(n *Node) (Specifier, error) {
	if err := b.expect(n, RuleRelativeSpecifier); err != nil {
		return 0, err
	}

	switch c := n.Child(0); {
	case c == nil:
		return 0, ErrUnexpectedNode
	case c.Rule >= RuleThis && c.Rule <= RuleLast:
		return This + Specifier(c.Rule-RuleThis), nil
	default:
		return 0, ErrUnexpectedNode.With(slog.String("got", c.Rule.String()))
	}
}

// TimeUnit : "year" | "month" | "week" | "day" | "hour" | "minute" | "second".
func (b *builder) timeUnit(n *Node) (Unit, error) {
	if err := b.expect(n, RuleTimeUnit); err != nil {
		return 0, err
	}

	switch c := n.Child(0); {
	case c == nil:
		return 0, ErrUnexpectedNode
	case c.Rule >= RuleYear && c.Rule <= RuleSecond:
		return UnitYear + Unit(c.Rule-RuleYear), nil
	default:
		return 0, ErrUnexpectedNode.With(slog.String("got", c.Rule.String()))
	}
}

// Weekday : "monday" | ... | "sunday".
func (b *builder) weekday(n *Node) (time.Weekday, error) {
	if err := b.expect(n, RuleWeekday); err != nil {
		return 0, err
	}

	switch c := n.Child(0); {
	case c == nil:
		return 0, ErrUnexpectedNode
	case c.Rule >= RuleMonday && c.Rule <= RuleSunday:
		// Terminals run monday..sunday; time.Weekday runs sunday..saturday.
		return time.Weekday((c.Rule - RuleMonday + 1) % 7), nil
	default:
		return 0, ErrUnexpectedNode.With(slog.String("got", c.Rule.String()))
	}
}

// MonthName : "january" | ... | "december".
func (b *builder) monthName(n *Node) (time.Month, error) {
	if err := b.expect(n, RuleMonthName); err != nil {
		return 0, err
	}

	switch c := n.Child(0); {
	case c == nil:
		return 0, ErrUnexpectedNode
	case c.Rule >= RuleJanuary && c.Rule <= RuleDecember:
		return time.January + time.Month(c.Rule-RuleJanuary), nil
	default:
		return 0, ErrUnexpectedNode.With(slog.String("got", c.Rule.String()))
	}
}

// Num : digit {digit}.
func (b *builder) num(n *Node) (int, error) {
	if err := b.expect(n, RuleNum); err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(n.Text(), 10, 32)
	if err != nil {
		return 0, ErrInvalidNumber.Wrap(err).With(slog.String("text", n.Text()))
	}

	return int(v), nil
}
