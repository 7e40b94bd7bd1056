package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/appointment-relay/internal/audit"
	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/metrics"
	"github.com/BruksfildServices01/appointment-relay/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	RequestID  string
	Submission domain.Submission
}

// ======================================================
// USE CASE
// ======================================================

type Deliverer interface {
	Deliver(ctx context.Context, s domain.Submission) error
}

type BookAppointment struct {
	relay   Deliverer
	audit   *audit.Dispatcher
	metrics *metrics.RelayMetrics
}

func NewBookAppointment(
	relay Deliverer,
	audit *audit.Dispatcher,
	m *metrics.RelayMetrics,
) *BookAppointment {
	return &BookAppointment{
		relay:   relay,
		audit:   audit,
		metrics: m,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the submission and relays it. The returned error is a
// *domain.ValidationError, notify.ErrConfigurationMissing or
// notify.ErrDeliveryFailed.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) error {

	// --------------------------------------------------
	// 1️⃣ Authoritative validation
	// --------------------------------------------------
	sub, err := domain.Validate(in.Submission)
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.ResultInvalid)
		return err
	}

	// --------------------------------------------------
	// 2️⃣ Relay (single attempt)
	// --------------------------------------------------
	err = uc.relay.Deliver(ctx, sub)
	status := domain.InitialStatus().Resolve(err)

	switch {
	case err == nil:
		uc.metrics.ObserveSubmission(metrics.ResultDelivered)
	case errors.Is(err, notify.ErrConfigurationMissing):
		uc.metrics.ObserveSubmission(metrics.ResultMisconfigured)
	default:
		uc.metrics.ObserveSubmission(metrics.ResultFailed)
	}

	// --------------------------------------------------
	// 3️⃣ Audit
	// --------------------------------------------------
	action := audit.ActionAppointmentBooked
	if status == domain.StatusFailed {
		action = audit.ActionAppointmentFailed
	}
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:    action,
			RequestID: in.RequestID,
			FullName:  sub.FullName,
			Date:      sub.Date,
			Time:      sub.Time,
			Service:   sub.Service,
			Status:    string(status),
		})
	}

	return err
}
