package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-relay/internal/audit"
	"github.com/BruksfildServices01/appointment-relay/internal/config"
	"github.com/BruksfildServices01/appointment-relay/internal/handlers"
	"github.com/BruksfildServices01/appointment-relay/internal/metrics"
	"github.com/BruksfildServices01/appointment-relay/internal/middleware"
	"github.com/BruksfildServices01/appointment-relay/internal/notify"
	ucAppointment "github.com/BruksfildServices01/appointment-relay/internal/usecase/appointment"
)

// Deps are the collaborators the router is built from. Tests swap the sink
// and the credential source.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sink     notify.Sink
	Telegram config.TelegramSource
	Audit    *audit.Dispatcher

	// Registry receives the relay metrics and backs /metrics.
	Registry *prometheus.Registry
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	relayMetrics := metrics.NewRelayMetrics(d.Registry)
	relay := notify.NewRelay(d.Sink, d.Telegram, relayMetrics, d.Logger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(relay, d.Audit, relayMetrics)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(bookUC, d.Logger)

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.POST("/book", bookingHandler.Book)
	}

	// ======================================================
	// 🌐 BOOKING FORM (STATIC)
	// ======================================================
	if d.Config == nil || d.Config.StaticDir == "" {
		return
	}
	if info, err := os.Stat(d.Config.StaticDir); err == nil && info.IsDir() {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(d.Config.StaticDir))))
	}
}
