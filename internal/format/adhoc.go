package format

import (
	"strings"

	"github.com/splashlog/splash/internal/plugin"
)

// AdHocName is the registry name of the default token highlighter.
const AdHocName = "adhoc"

// AdHoc highlights arbitrary log lines without extracting a schema. It runs
// two passes: a character pass styling quotes and square brackets, then a
// word pass classifying whitespace-delimited tokens. The word pass inspects
// the character pass's output, so tokens that picked up quote or bracket
// styling can fall out of the number/IP/verb classifications.
type AdHoc struct {
	rules *Rules
	theme Theme
}

// NewAdHoc builds the highlighter around a shared pattern table and theme.
func NewAdHoc(rules *Rules, theme Theme) *AdHoc {
	return &AdHoc{rules: rules, theme: theme}
}

func (h *AdHoc) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        AdHocName,
		Version:     plugin.Version{Major: 1, Minor: 0, Patch: 0},
		Description: "ad-hoc token highlighter for arbitrary log lines",
		Author:      "splash authors",
	}
}

// ParseLine renders line with emphasis applied. Every line matches this
// format, so the result is always Parsed.
func (h *AdHoc) ParseLine(line string) plugin.Result {
	return plugin.Match(h.highlight(line))
}

func (h *AdHoc) highlight(line string) string {
	words := strings.Fields(h.highlightChars(line))
	for i, word := range words {
		words[i] = h.highlightWord(word)
	}
	return strings.Join(words, " ")
}

// highlightChars styles quote and bracket characters, passing everything else
// through unchanged.
func (h *AdHoc) highlightChars(line string) string {
	var out strings.Builder
	out.Grow(len(line))
	for _, c := range line {
		s := string(c)
		switch {
		case h.rules.Quote.MatchString(s):
			out.WriteString(h.theme.Quote.Render(s))
		case h.rules.Bracket.MatchString(s):
			out.WriteString(h.theme.Bracket.Render(s))
		default:
			out.WriteString(s)
		}
	}
	return out.String()
}

// highlightWord classifies one token. Rules apply in strict precedence:
// all-digits, embedded dotted quad, embedded HTTP verb; the first match wins.
func (h *AdHoc) highlightWord(word string) string {
	if h.rules.Number.MatchString(word) {
		return h.theme.Number.Render(word)
	}
	if loc := h.rules.IPAddr.FindStringIndex(word); loc != nil {
		return word[:loc[0]] + h.theme.IPAddr.Render(word[loc[0]:loc[1]]) + word[loc[1]:]
	}
	if loc := h.rules.Verb.FindStringIndex(word); loc != nil {
		return word[:loc[0]] + h.theme.Verb.Render(word[loc[0]:loc[1]]) + word[loc[1]:]
	}
	return word
}
