package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"personal-task-tracker/pkg/datemath"
)

// Fields is the structured result of parsing one raw task input. Optional
// fields are left at their zero value when the corresponding marker is
// absent or malformed.
type Fields struct {
	Description string
	Tags        []string
	Priority    string
	DueDate     *time.Time
	AssignedTo  string
	Time        *time.Time
	Recurrence  string
}

// extractors run in a fixed order: tags, priority, due date, assignee,
// time, recurrence. captureTime relies on captureDueDate having settled
// the anchor, and cleanDescription strips tokens in the same order.
var extractors = []func(p *Parser, f *Fields, text string, now time.Time){
	captureTags,
	capturePriority,
	captureDueDate,
	captureAssigned,
	captureTime,
	captureRecurrence,
}

// stripPatterns is the token-removal order after the tag pass.
var stripPatterns = []*regexp.Regexp{
	priorityPattern,
	dueDatePattern,
	assignedPattern,
	timePattern,
	recurPattern,
}

// Parser turns free-form task text into structured fields.
type Parser struct {
	dates *datemath.Parser
}

// New creates a parser that resolves relative dates with the given resolver.
func New(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates}
}

// Parse scans text with every extractor, resolves dates and times relative
// to now, and strips all matched tokens out of the description. It never
// fails: unknown or malformed markers simply yield no value.
func (p *Parser) Parse(text string, now time.Time) Fields {
	var f Fields
	for _, capture := range extractors {
		capture(p, &f, text, now)
	}
	f.Description = cleanDescription(text)
	return f
}

// cleanDescription removes every full pattern match in extractor order,
// then trims whitespace and one layer of enclosing double quotes. Tag
// matches inside an assignee token are left alone so the email is still
// whole when its own pattern strips it.
func cleanDescription(text string) string {
	text = removeSpans(text, tagSpans(text))
	for _, pattern := range stripPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return strings.TrimSpace(text)
}

// maskAssignees blanks out every assignee token so the @domain part of an
// email cannot read as a tag. Lengths are preserved, so match spans on the
// masked text index into the original.
func maskAssignees(text string) string {
	spans := assignedPattern.FindAllStringIndex(text, -1)
	if spans == nil {
		return text
	}
	b := []byte(text)
	for _, s := range spans {
		for i := s[0]; i < s[1]; i++ {
			b[i] = ' '
		}
	}
	return string(b)
}

// tagSpans locates tag matches outside assignee tokens.
func tagSpans(text string) [][]int {
	return tagPattern.FindAllStringIndex(maskAssignees(text), -1)
}

// removeSpans cuts the given index ranges out of text. Spans must be
// sorted and non-overlapping, which FindAllStringIndex guarantees.
func removeSpans(text string, spans [][]int) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s[0]])
		prev = s[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

// captureTags keeps every tag in order of appearance, duplicates included.
// Assignee tokens are masked first: "assigned:bob@widgets.io" contributes
// no tag.
func captureTags(_ *Parser, f *Fields, text string, _ time.Time) {
	masked := maskAssignees(text)
	for _, m := range tagPattern.FindAllStringSubmatch(masked, -1) {
		f.Tags = append(f.Tags, m[1])
	}
}

// capturePriority takes only the first priority marker, normalized to
// lowercase.
func capturePriority(_ *Parser, f *Fields, text string, _ time.Time) {
	if m := priorityPattern.FindStringSubmatch(text); m != nil {
		f.Priority = strings.ToLower(m[1])
	}
}

// captureDueDate resolves the first "due:" marker. When no marker exists it
// falls back to scanning for bare "tomorrow" / "next week" anywhere in the
// text; those bare words are not treated as tokens and stay in the
// description.
func captureDueDate(p *Parser, f *Fields, text string, now time.Time) {
	if m := dueDatePattern.FindString(text); m != "" {
		if d, ok := p.dates.DueDate(m, now); ok {
			f.DueDate = &d
		}
		return
	}
	lower := strings.ToLower(text)
	for _, candidate := range []string{"tomorrow", "next week"} {
		if strings.Contains(lower, candidate) {
			if d, ok := p.dates.DueDate(candidate, now); ok {
				f.DueDate = &d
			}
			return
		}
	}
}

func captureAssigned(_ *Parser, f *Fields, text string, _ time.Time) {
	if m := assignedPattern.FindStringSubmatch(text); m != nil {
		if ValidateEmail(m[1]) {
			f.AssignedTo = m[1]
		}
	}
}

// captureTime anchors a parsed clock time onto the resolved due date when
// one exists, else onto now. Runs after captureDueDate in the extractor
// list, so the anchor is already settled.
func captureTime(p *Parser, f *Fields, text string, now time.Time) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	anchor := now
	if f.DueDate != nil {
		anchor = *f.DueDate
	}
	t := p.dates.Merge(anchor, datemath.Clock{Hour: hour, Minute: minute, Meridiem: m[3]})
	f.Time = &t
}

// captureRecurrence stores the interval word verbatim; recurrence is never
// interpreted further.
func captureRecurrence(_ *Parser, f *Fields, text string, _ time.Time) {
	if m := recurPattern.FindStringSubmatch(text); m != nil {
		f.Recurrence = strings.ToLower(m[1])
	}
}
