package parse

import "regexp"

// Marker pattern sources. The exact-match variants below reuse these for
// validation, so the two can never drift apart.
const (
	tagExpr      = `@([A-Za-z0-9_]+)`
	priorityExpr = `(?i)#(high|medium|low)`
	dueDateExpr  = `(?i)due:(\d{4}-\d{2}-\d{2}|tomorrow|next week)`
	assignedExpr = `assigned:([A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+)`
	timeExpr     = `\b(?:at|by)\s*(\d{1,2})(?::(\d{2}))?\s*((?i:am|pm))?`
	recurExpr    = `(?i)\bevery\s+(\w+)`
)

var (
	tagPattern      = regexp.MustCompile(tagExpr)
	priorityPattern = regexp.MustCompile(priorityExpr)
	dueDatePattern  = regexp.MustCompile(dueDateExpr)
	assignedPattern = regexp.MustCompile(assignedExpr)
	timePattern     = regexp.MustCompile(timeExpr)
	recurPattern    = regexp.MustCompile(recurExpr)
)

// Anchored variants used by the validators for full-string matching.
var (
	tagExact      = regexp.MustCompile(`^(?:` + tagExpr + `)$`)
	priorityExact = regexp.MustCompile(`^(?:` + priorityExpr + `)$`)
	assignedExact = regexp.MustCompile(`^(?:` + assignedExpr + `)$`)
)
