package plugin

import (
	"strings"
	"testing"
)

// stubPlugin accepts lines by predicate; nil accepts everything.
type stubPlugin struct {
	name    string
	version Version
	accept  func(string) bool
}

func (s stubPlugin) Metadata() Metadata {
	return Metadata{
		Name:        s.name,
		Version:     s.version,
		Description: "stub",
		Author:      "test",
	}
}

func (s stubPlugin) ParseLine(line string) Result {
	if s.accept == nil || s.accept(line) {
		return Match(line)
	}
	return Miss()
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}
	if got := v.String(); got != "1.2.3" {
		t.Fatalf("String() = %q, want %q", got, "1.2.3")
	}
}

func TestVersionCompatible(t *testing.T) {
	tests := []struct {
		name     string
		have     Version
		required Version
		want     bool
	}{
		{"reflexive", Version{1, 2, 3}, Version{1, 2, 3}, true},
		{"newer minor satisfies", Version{1, 3, 0}, Version{1, 2, 3}, true},
		{"older minor fails", Version{1, 2, 3}, Version{1, 3, 0}, false},
		{"newer patch satisfies", Version{1, 2, 4}, Version{1, 2, 3}, true},
		{"older patch fails", Version{1, 2, 2}, Version{1, 2, 3}, false},
		{"major above fails", Version{2, 0, 0}, Version{1, 9, 9}, false},
		{"major below fails", Version{1, 9, 9}, Version{2, 0, 0}, false},
		{"zero version reflexive", Version{0, 0, 0}, Version{0, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.have.Compatible(tt.required); got != tt.want {
				t.Errorf("%s.Compatible(%s) = %v, want %v", tt.have, tt.required, got, tt.want)
			}
		})
	}
}

func TestCanParse(t *testing.T) {
	p := stubPlugin{name: "ok", accept: func(line string) bool {
		return strings.HasPrefix(line, "ok")
	}}

	if !CanParse(p, "ok fine") {
		t.Error("CanParse rejected a parseable line")
	}
	if CanParse(p, "nope") {
		t.Error("CanParse accepted an unparseable line")
	}
}

func TestDetectFormat(t *testing.T) {
	p := stubPlugin{name: "ok", accept: func(line string) bool {
		return strings.HasPrefix(line, "ok")
	}}

	tests := []struct {
		name    string
		samples []string
		want    float64
	}{
		{"empty sample set", nil, 0.0},
		{"all parseable", []string{"ok one", "ok two", "ok three"}, 1.0},
		{"half parseable", []string{"ok one", "nope"}, 0.5},
		{"none parseable", []string{"no", "nope"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(p, tt.samples); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultConstructors(t *testing.T) {
	if r := Match("text"); r.Kind != Parsed || r.Text != "text" {
		t.Errorf("Match() = %+v", r)
	}
	if r := Miss(); r.Kind != NoMatch {
		t.Errorf("Miss() = %+v", r)
	}
	if r := Fail("boom"); r.Kind != ParseError || r.Err != "boom" {
		t.Errorf("Fail() = %+v", r)
	}
}
