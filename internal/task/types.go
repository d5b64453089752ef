package task

// ListFilter narrows the list command's output. Filters are applied in
// field order and each non-empty filter replaces the previous result, so
// the last one specified wins.
type ListFilter struct {
	Priority string // exact priority value
	Tag      string // full-match tag pattern
	Due      string // partial-match pattern against the ISO due date
}

// IsZero reports whether no filter is set.
func (f ListFilter) IsZero() bool {
	return f.Priority == "" && f.Tag == "" && f.Due == ""
}
