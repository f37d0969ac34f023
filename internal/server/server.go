/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the session
store, the localization catalog and the plan generator into echo handlers.
*/
package server

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/config"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/i18n"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/session"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/utility"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// cfg is the loaded process configuration.
	cfg *config.Config

	// sessions maps session cookies to per-session controllers.
	sessions *session.Store

	// catalog holds the validated content of every UI language.
	catalog *i18n.Catalog

	// planLimiter throttles plan generation per client IP.
	planLimiter *utility.IPRateLimiter

	// pick returns a random index in [0, n); replaced in tests.
	pick func(n int) int

	startedAt time.Time
}

// New builds a Server around generator. The generator is the only outbound
// dependency; everything else lives in process.
func New(cfg *config.Config, generator session.PlanGenerator) *Server {
	cookies := session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionTTL, cfg.IsProduction())

	return &Server{
		cfg:         cfg,
		sessions:    session.NewStore(cookies, generator, cfg.MaxSessions, cfg.SessionTTL),
		catalog:     i18n.MustLoad(),
		planLimiter: utility.NewIPRateLimiter(cfg.PlanRatePerMinute),
		pick:        rand.Intn,
		startedAt:   time.Now(),
	}
}

// NewServer returns a configured *http.Server for s.
func NewServer(s *Server) *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,      // Time to wait for the next request on keep-alive connections.
		ReadHeaderTimeout: 10 * time.Second, // Maximum duration for reading request headers.
		ReadTimeout:       10 * time.Second, // Maximum duration for reading the entire request.
		WriteTimeout:      3 * time.Minute,  // Covers a full model round trip before the response is written.
	}
}
