package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/splashlog/splash/internal/plugin"
)

// CLFName is the registry name of the structured access-log parser.
const CLFName = "clf"

// clfPattern matches one Common Log Format record: client address, two
// identity tokens, bracketed datetime, quoted request triple, status, size.
// It is searched repeatedly so multiple records on one line all match.
var clfPattern = regexp.MustCompile(
	`(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` + // client
		`\s(\S+)` + // user_identifier
		`\s(\S+)` + // userid
		`\s(\[.*?\])` + // datetime, brackets included
		`\s"([A-Z]+)\s(\S+)\s(\S+)"` + // method, request, protocol
		`\s(\d{3})` + // status
		`\s(\d+|-)`) // size

// Record holds the nine fields of one access-log entry. Field values are
// slices of the source line and do not outlive one render call.
type Record struct {
	Client         string
	UserIdentifier string
	UserID         string
	Datetime       string
	Method         string
	Request        string
	Protocol       string
	Status         string
	Size           string
}

// CLF extracts structured records from web-access-log lines and renders each
// field with its own emphasis. Lines that do not match the grammar in full
// are dropped silently.
type CLF struct {
	theme Theme
}

// NewCLF builds the parser around a theme.
func NewCLF(theme Theme) *CLF {
	return &CLF{theme: theme}
}

func (p *CLF) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        CLFName,
		Version:     plugin.Version{Major: 1, Minor: 0, Patch: 0},
		Description: "Common Log Format access-log parser",
		Author:      "splash authors",
	}
}

// ParseLine extracts every non-overlapping record from line. One rendered
// record per match, joined by newlines; no match yields NoMatch.
func (p *CLF) ParseLine(line string) plugin.Result {
	records := parseRecords(line)
	if len(records) == 0 {
		return plugin.Miss()
	}
	rendered := make([]string, len(records))
	for i, rec := range records {
		rendered[i] = p.render(rec)
	}
	return plugin.Match(strings.Join(rendered, "\n"))
}

func parseRecords(line string) []Record {
	matches := clfPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	records := make([]Record, len(matches))
	for i, m := range matches {
		records[i] = Record{
			Client:         m[1],
			UserIdentifier: m[2],
			UserID:         m[3],
			Datetime:       m[4],
			Method:         m[5],
			Request:        m[6],
			Protocol:       m[7],
			Status:         m[8],
			Size:           m[9],
		}
	}
	return records
}

func (p *CLF) render(rec Record) string {
	quoted := fmt.Sprintf("\"%s %s %s\"",
		p.theme.Method.Render(rec.Method),
		p.theme.Request.Render(rec.Request),
		p.theme.Protocol.Render(rec.Protocol))

	return strings.Join([]string{
		p.theme.Client.Render(rec.Client),
		p.theme.UserIdentifier.Render(rec.UserIdentifier),
		p.theme.UserID.Render(rec.UserID),
		p.theme.Datetime.Render(rec.Datetime),
		quoted,
		p.theme.Status.Render(rec.Status),
		p.theme.Size.Render(rec.Size),
	}, " ")
}
