package appointment

import "strings"

// Submission is one booking request as typed by the customer. It lives for a
// single request and is never stored.
type Submission struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Service  string `json:"service"`
	Notes    string `json:"notes"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		FullName: strings.TrimSpace(s.FullName),
		Phone:    strings.TrimSpace(s.Phone),
		Date:     strings.TrimSpace(s.Date),
		Time:     strings.TrimSpace(s.Time),
		Service:  strings.TrimSpace(s.Service),
		Notes:    strings.TrimSpace(s.Notes),
	}
}

// HasNotes reports whether the customer left a non-blank note.
func (s Submission) HasNotes() bool {
	return strings.TrimSpace(s.Notes) != ""
}
