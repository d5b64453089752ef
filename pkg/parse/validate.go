package parse

import "time"

// ValidateEmail reports whether the string is an acceptable email address,
// using the same shape the assignee marker recognizes.
func ValidateEmail(email string) bool {
	return assignedExact.MatchString("assigned:" + email)
}

// ValidatePriority reports whether the value is one of high/medium/low,
// case-insensitive.
func ValidatePriority(priority string) bool {
	return priorityExact.MatchString("#" + priority)
}

// ValidateTag reports whether a tag contains only allowed characters.
func ValidateTag(tag string) bool {
	return tagExact.MatchString("@" + tag)
}

// ValidateDate reports whether the string is a parseable calendar date or
// datetime in ISO-8601 form.
func ValidateDate(date string) bool {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"} {
		if _, err := time.Parse(layout, date); err == nil {
			return true
		}
	}
	return false
}

// ValidateTaskID reports whether the id is valid for repository lookup:
// a positive integer.
func ValidateTaskID(id int) bool {
	return id > 0
}
