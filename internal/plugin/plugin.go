package plugin

import "fmt"

// Version identifies a plugin release.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compatible reports whether v satisfies the required version: the major
// versions must match exactly and v must be at least as new in minor/patch.
// The relation is reflexive but not symmetric.
func (v Version) Compatible(required Version) bool {
	if v.Major != required.Major {
		return false
	}
	if v.Minor != required.Minor {
		return v.Minor > required.Minor
	}
	return v.Patch >= required.Patch
}

// Metadata describes a registered format plugin. Name is the identity key
// used by the registry.
type Metadata struct {
	Name        string
	Version     Version
	Description string
	Author      string
}

// Kind classifies the outcome of parsing one line.
type Kind int

const (
	// NoMatch means the line is not in this plugin's format.
	NoMatch Kind = iota
	// Parsed means the line was recognized and rendered.
	Parsed
	// ParseError means the line was recognized but could not be processed.
	ParseError
)

// Result is the outcome of parsing a single line. Err is a data value, not a
// raised fault; propagation policy belongs to the caller.
type Result struct {
	Kind Kind
	Text string // rendered output when Kind == Parsed
	Err  string // failure detail when Kind == ParseError
}

// Match builds a Parsed result carrying the rendered text.
func Match(text string) Result {
	return Result{Kind: Parsed, Text: text}
}

// Miss builds a NoMatch result.
func Miss() Result {
	return Result{Kind: NoMatch}
}

// Fail builds a ParseError result carrying the failure detail.
func Fail(msg string) Result {
	return Result{Kind: ParseError, Err: msg}
}

// Plugin is the capability set a line format parser must expose. Registered
// instances are shared: a handle obtained from the registry stays valid even
// if the plugin is unregistered afterwards, so implementations must be safe
// for concurrent ParseLine calls and immutable after construction.
type Plugin interface {
	Metadata() Metadata
	ParseLine(line string) Result
}

// CanParse reports whether p recognizes line, derived as "ParseLine yields
// Parsed".
func CanParse(p Plugin, line string) bool {
	return p.ParseLine(line).Kind == Parsed
}

// DetectFormat scores how confidently p handles the sample lines, as the
// fraction of samples CanParse accepts. An empty sample set scores 0.0.
func DetectFormat(p Plugin, samples []string) float64 {
	if len(samples) == 0 {
		return 0.0
	}
	matched := 0
	for _, line := range samples {
		if CanParse(p, line) {
			matched++
		}
	}
	return float64(matched) / float64(len(samples))
}
