package format

import "regexp"

// Rules is the fixed pattern table driving the ad-hoc highlighter. It is
// constructed once at startup, immutable afterwards, and shared by reference.
type Rules struct {
	Number  *regexp.Regexp // token consists entirely of digits
	IPAddr  *regexp.Regexp // embedded dotted-quad digit pattern
	Verb    *regexp.Regexp // embedded HTTP verb keyword
	Quote   *regexp.Regexp // double-quote character
	Bracket *regexp.Regexp // open or close square bracket
}

// NewRules compiles the pattern table.
func NewRules() *Rules {
	return &Rules{
		Number:  regexp.MustCompile(`^\d+$`),
		IPAddr:  regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),
		Verb:    regexp.MustCompile(`GET|POST`),
		Quote:   regexp.MustCompile(`"`),
		Bracket: regexp.MustCompile(`\[|\]`),
	}
}
