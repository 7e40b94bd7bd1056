package notify

import (
	"strings"

	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/locale"
)

// Message is one text addressed to a Telegram chat.
type Message struct {
	ChatID   string
	BotToken string
	Text     string
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// FormatMessage renders the staff notification for an accepted submission.
// The notes line is present only when the notes are not blank.
func FormatMessage(s domain.Submission) string {
	s = s.Normalize()

	lines := []string{
		locale.MessageHeader,
		"",
		field(locale.LabelName, s.FullName),
		field(locale.LabelPhone, s.Phone),
		field(locale.LabelDate, s.Date),
		field(locale.LabelTime, s.Time),
		field(locale.LabelService, s.Service),
	}
	if s.HasNotes() {
		lines = append(lines, field(locale.LabelNotes, s.Notes))
	}
	lines = append(lines, "", locale.MessageFooter)

	return strings.Join(lines, "\n")
}

// labels are Markdown, customer text is escaped
func field(label, value string) string {
	return label + " " + markdownEscaper.Replace(value)
}
