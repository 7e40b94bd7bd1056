package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-relay/internal/config"
	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/httperr"
	"github.com/BruksfildServices01/appointment-relay/internal/metrics"
)

var (
	// ErrConfigurationMissing means the bot token or the chat id is not set.
	ErrConfigurationMissing = httperr.ErrBusiness("configuration_missing")
	// ErrDeliveryFailed hides whatever went wrong talking to the sink.
	ErrDeliveryFailed = httperr.ErrBusiness("delivery_failed")
)

// Sink delivers a rendered message and reports whether it was accepted.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, msg Message) error

func (f SinkFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Relay formats accepted submissions and hands them to the sink once.
type Relay struct {
	sink    Sink
	source  config.TelegramSource
	metrics *metrics.RelayMetrics
	logger  *zap.Logger
}

func NewRelay(
	sink Sink,
	source config.TelegramSource,
	m *metrics.RelayMetrics,
	logger *zap.Logger,
) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		sink:    sink,
		source:  source,
		metrics: m,
		logger:  logger,
	}
}

// Deliver sends one notification for s. It returns nil when the sink
// acknowledged, ErrConfigurationMissing when credentials are absent (the sink
// is not called), and ErrDeliveryFailed for anything else. There is no retry.
func (r *Relay) Deliver(ctx context.Context, s domain.Submission) error {
	tg := r.source.Telegram()
	if !tg.Complete() {
		r.logger.Error("telegram configuration missing",
			zap.Bool("bot_token_set", tg.BotToken != ""),
			zap.Bool("chat_id_set", tg.ChatID != ""),
		)
		return ErrConfigurationMissing
	}

	msg := Message{
		ChatID:   tg.ChatID,
		BotToken: tg.BotToken,
		Text:     FormatMessage(s),
	}

	start := time.Now()
	err := r.sink.Send(ctx, msg)
	status := domain.InitialStatus().Resolve(err)
	r.metrics.ObserveDelivery(string(status), time.Since(start).Seconds())

	if err != nil {
		r.logger.Error("telegram delivery failed",
			zap.Error(err),
			zap.String("service", s.Service),
			zap.String("date", s.Date),
			zap.String("time", s.Time),
		)
		return ErrDeliveryFailed
	}

	return nil
}
