package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/httperr"
	"github.com/BruksfildServices01/appointment-relay/internal/httpresp"
	"github.com/BruksfildServices01/appointment-relay/internal/locale"
	"github.com/BruksfildServices01/appointment-relay/internal/middleware"
	"github.com/BruksfildServices01/appointment-relay/internal/notify"
	ucAppointment "github.com/BruksfildServices01/appointment-relay/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	book   *ucAppointment.BookAppointment
	logger *zap.Logger
}

func NewBookingHandler(book *ucAppointment.BookAppointment, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{
		book:   book,
		logger: logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Service  string `json:"service"`
	Notes    string `json:"notes"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, locale.InvalidRequest)
		return
	}

	err := h.book.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			RequestID: c.GetString(middleware.RequestIDKey),
			Submission: domain.Submission{
				FullName: req.FullName,
				Phone:    req.Phone,
				Date:     req.Date,
				Time:     req.Time,
				Service:  req.Service,
				Notes:    req.Notes,
			},
		},
	)

	if err != nil {
		h.mapBookErrors(c, err)
		return
	}

	httpresp.OK(c, locale.BookingConfirmed)
}

func (h *BookingHandler) mapBookErrors(c *gin.Context, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		httperr.BadRequest(c, ve.Message)
		return
	}

	switch {
	case errors.Is(err, notify.ErrConfigurationMissing):
		httperr.Internal(c, locale.ServerMisconfigured)
	case errors.Is(err, notify.ErrDeliveryFailed):
		httperr.BadGateway(c, locale.BookingFailed)
	default:
		h.logger.Error("booking failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		httperr.Internal(c, locale.BookingFailed)
	}
}

// ======================================================
// HEALTH
// ======================================================

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": locale.HealthOK,
	})
}
