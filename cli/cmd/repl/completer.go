package repl

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/humandate/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"ast", "clear", "expr", "help", "now", "quit", "week"}

// vocabulary is the candidate list of phrases.
var vocabulary = sync.OnceValue(lang.Vocabulary)

// exprNames is the candidate list of expressions: the evaluation
// environment, the expr-lang builtins, and the phrase vocabulary.
var exprNames = sync.OnceValue(func() []string {
	names := lang.EnvKeys()
	names = append(names, slices.Sorted(maps.Keys(builtin.Index))...)

	return append(names, vocabulary()...)
})

// isPhraseBoundary reports whether r separates words of a phrase. Hyphens
// and colons belong to words such as "twenty-first" and "9:30".
func isPhraseBoundary(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}

// isExprBoundary reports whether r separates words of an expression.
func isExprBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t', '"', '\'', '`',
		'(', ')', '[', ']',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the word around cursor and its byte offsets in input.
// The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int, boundary func(rune) bool) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if boundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if boundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the completion candidates of the word starting at
// wordStart and the boundary function delimiting it.
func candidates(mode inputMode, input string, wordStart int) ([]string, func(rune) bool) {
	if mode == modeEval {
		return vocabulary(), isPhraseBoundary
	}

	command, _, hasArgs := strings.Cut(strings.TrimLeft(input, " \t"), " ")
	if !hasArgs || wordStart <= len(input)-len(strings.TrimLeft(input, " \t"))+len(command) {
		return ctrlCommands, isPhraseBoundary
	}

	switch command {
	case "week":
		return []string{"monday", "sunday"}, isPhraseBoundary
	case "expr":
		return exprNames(), isExprBoundary
	case "ast", "now":
		return vocabulary(), isPhraseBoundary
	default:
		return nil, isPhraseBoundary
	}
}

// computeMatches returns the fuzzy matches, best first, of the word at the
// cursor and the word's offsets. An empty word has no matches.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()
	cursor := m.input.Position()

	// The boundary depends on the command, which precedes the word.
	_, boundary := candidates(m.mode, input, cursor)
	word, wordStart, wordEnd := wordBounds(input, cursor, boundary)

	if word == "" {
		return nil, wordStart, wordEnd
	}

	list, _ := candidates(m.mode, input, wordStart)
	if len(list) == 0 {
		return nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, list), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		last := i == len(matches)-1
		if i > 0 && used+entryWidth+ellipsisWidth > width && !(last && used+entryWidth <= width) {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if _, ok := builtin.Index[match.Str]; ok {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}
