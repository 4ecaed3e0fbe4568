package lang

import (
	"io"
	"strconv"
	"strings"
)

// Rule identifies the production or terminal kind of a syntax tree [Node].
type Rule int

const (
	RuleInvalid Rule = iota

	// Productions.
	RuleHumanTime
	RuleDateTime
	RuleAgo
	RuleIn
	RuleDate
	RuleIsoDate
	RuleTime
	RuleDuration
	RuleQuantifier
	RuleOrdinal
	RuleReference
	RuleMonthSpec
	RuleYearSpec
	RuleRelativeSpecifier
	RuleTimeUnit
	RuleWeekday
	RuleMonthName

	// Terminals.
	RuleNum
	RuleOrdinalText
	RuleNow
	RuleToday
	RuleTomorrow
	RuleOvermorrow
	RuleYesterday
	RuleThis
	RuleNext
	RuleLast
	RuleYear
	RuleMonth
	RuleWeek
	RuleDay
	RuleHour
	RuleMinute
	RuleSecond
	RuleMonday
	RuleTuesday
	RuleWednesday
	RuleThursday
	RuleFriday
	RuleSaturday
	RuleSunday
	RuleJanuary
	RuleFebruary
	RuleMarch
	RuleApril
	RuleMay
	RuleJune
	RuleJuly
	RuleAugust
	RuleSeptember
	RuleOctober
	RuleNovember
	RuleDecember
)

var ruleNames = map[Rule]string{
	RuleInvalid:           "Invalid",
	RuleHumanTime:         "HumanTime",
	RuleDateTime:          "DateTime",
	RuleAgo:               "Ago",
	RuleIn:                "In",
	RuleDate:              "Date",
	RuleIsoDate:           "IsoDate",
	RuleTime:              "Time",
	RuleDuration:          "Duration",
	RuleQuantifier:        "Quantifier",
	RuleOrdinal:           "Ordinal",
	RuleReference:         "DateTimeReference",
	RuleMonthSpec:         "MonthSpec",
	RuleYearSpec:          "YearSpec",
	RuleRelativeSpecifier: "RelativeSpecifier",
	RuleTimeUnit:          "TimeUnit",
	RuleWeekday:           "Weekday",
	RuleMonthName:         "MonthName",
	RuleNum:               "Num",
	RuleOrdinalText:       "OrdinalText",
	RuleNow:               "now",
	RuleToday:             "today",
	RuleTomorrow:          "tomorrow",
	RuleOvermorrow:        "overmorrow",
	RuleYesterday:         "yesterday",
	RuleThis:              "this",
	RuleNext:              "next",
	RuleLast:              "last",
	RuleYear:              "year",
	RuleMonth:             "month",
	RuleWeek:              "week",
	RuleDay:               "day",
	RuleHour:              "hour",
	RuleMinute:            "minute",
	RuleSecond:            "second",
	RuleMonday:            "monday",
	RuleTuesday:           "tuesday",
	RuleWednesday:         "wednesday",
	RuleThursday:          "thursday",
	RuleFriday:            "friday",
	RuleSaturday:          "saturday",
	RuleSunday:            "sunday",
	RuleJanuary:           "january",
	RuleFebruary:          "february",
	RuleMarch:             "march",
	RuleApril:             "april",
	RuleMay:               "may",
	RuleJune:              "june",
	RuleJuly:              "july",
	RuleAugust:            "august",
	RuleSeptember:         "september",
	RuleOctober:           "october",
	RuleNovember:          "november",
	RuleDecember:          "december",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}

	return "Rule(" + strconv.Itoa(int(r)) + ")"
}

// IsTerminal reports whether r is a leaf kind.
func (r Rule) IsTerminal() bool { return r >= RuleNum }

// Node is a syntax tree node produced by the grammar. Production nodes carry
// the index of the alternate that matched; terminal nodes carry the token.
//
// Syntax trees are discarded once the expression tree has been built.
type Node struct {
	Rule     Rule
	Alt      int
	Token    Token
	Children []*Node
}

// Alternate returns the index of the production alternate that matched.
func (n *Node) Alternate() int { return n.Alt }

// Child returns the i-th child, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

// Text returns the source text of a terminal node.
func (n *Node) Text() string { return n.Token.Value }

// Print writes an indented outline of the syntax tree to w.
func (n *Node) Print(w io.Writer) error {
	return catchWrite(func() { n.print(writer(w), 0) })
}

func (n *Node) print(write func(eol string, item ...string), depth int) {
	pad := strings.Repeat("  ", depth)

	if n.Rule.IsTerminal() {
		write("\n", pad+n.Rule.String(), strconv.Quote(n.Text()))

		return
	}

	write("\n", pad+n.Rule.String(), "alt "+strconv.Itoa(n.Alt))

	for _, c := range n.Children {
		c.print(write, depth+1)
	}
}

// writer returns a function that writes items joined by ": " and terminated
// by eol. Write errors panic; see [catchWrite].
func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, err := io.WriteString(w, strings.Join(item, ": ")+eol)
		if err != nil {
			panic(err)
		}
	}
}
