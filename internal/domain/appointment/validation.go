package appointment

import (
	"errors"

	"github.com/BruksfildServices01/appointment-relay/internal/locale"
)

// ===============================
// Rejection reasons
// ===============================

type Reason string

const (
	MissingName    Reason = "missing_name"
	MissingPhone   Reason = "missing_phone"
	MissingDate    Reason = "missing_date"
	MissingTime    Reason = "missing_time"
	MissingService Reason = "missing_service"
)

// ValidationError rejects a submission because of its first empty required field.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Reason)
}

// AsValidation unwraps a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ===============================
// Rules
// ===============================

type rule struct {
	reason Reason
	value  func(Submission) string
}

// required fields, in the order they are checked
var rules = []rule{
	{MissingName, func(s Submission) string { return s.FullName }},
	{MissingPhone, func(s Submission) string { return s.Phone }},
	{MissingDate, func(s Submission) string { return s.Date }},
	{MissingTime, func(s Submission) string { return s.Time }},
	{MissingService, func(s Submission) string { return s.Service }},
}

var serverMessages = map[Reason]string{
	MissingName:    locale.NameRequired,
	MissingPhone:   locale.PhoneRequired,
	MissingDate:    locale.DateRequired,
	MissingTime:    locale.TimeRequired,
	MissingService: locale.ServiceRequired,
}

var formMessages = map[Reason]string{
	MissingName:    locale.PromptName,
	MissingPhone:   locale.PromptPhone,
	MissingDate:    locale.PromptDate,
	MissingTime:    locale.PromptTime,
	MissingService: locale.PromptService,
}

// Validate is the authoritative check run on receipt. It trims every field and
// stops at the first missing required one. Notes are never checked.
func Validate(raw Submission) (Submission, error) {
	return check(raw, serverMessages)
}

// ValidateForm mirrors Validate on the submitting side so the customer gets an
// answer without a round trip. Only Validate decides acceptance.
func ValidateForm(raw Submission) (Submission, error) {
	return check(raw, formMessages)
}

func check(raw Submission, messages map[Reason]string) (Submission, error) {
	s := raw.Normalize()

	for _, r := range rules {
		if r.value(s) == "" {
			return Submission{}, &ValidationError{
				Reason:  r.reason,
				Message: messages[r.reason],
			}
		}
	}

	return s, nil
}
