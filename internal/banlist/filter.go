package banlist

import "strings"

// Filter narrows entries to those matching the search term, case-insensitively
// against the display name, the account name or the id as a string. Filtering
// happens before pagination so page totals reflect only matches. A blank term
// returns the input unchanged.
func Filter(entries []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}
	var matched []Entry
	for _, e := range entries {
		if e.User == nil {
			continue
		}
		if strings.Contains(strings.ToLower(DisplayName(e.User)), term) ||
			strings.Contains(strings.ToLower(e.User.Username), term) ||
			strings.Contains(e.User.ID, term) {
			matched = append(matched, e)
		}
	}
	return matched
}
