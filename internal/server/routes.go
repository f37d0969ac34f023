package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// TemplateRenderer is a custom html/template renderer for Echo framework
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	if s.cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(LoggerMiddleware)

	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	e.Renderer = &TemplateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}

	e.GET("/health", s.healthHandler)

	// Form pages
	e.GET("/", s.indexHandler)
	e.POST("/plan", s.submitPlanHandler, s.planLimiter.Middleware)
	e.POST("/reset", s.resetHandler)
	e.POST("/new", s.newPlanHandler)
	e.GET("/plan.md", s.downloadPlanHandler)

	// JSON API over the same session
	api := e.Group("/api")
	api.GET("/state", s.apiStateHandler)
	api.POST("/plan", s.apiSubmitPlanHandler, s.planLimiter.Middleware)
	api.POST("/reset", s.apiResetHandler)
	api.POST("/new", s.apiNewPlanHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	stats := map[string]string{
		"status":         "up",
		"model":          s.cfg.OpenAIModel,
		"sessions":       strconv.Itoa(s.sessions.Len()),
		"uptime_seconds": strconv.FormatInt(int64(time.Since(s.startedAt).Seconds()), 10),
	}

	if v, err := mem.VirtualMemory(); err == nil {
		stats["memory_used_percent"] = strconv.FormatFloat(v.UsedPercent, 'f', 1, 64)
	}
	if uptime, err := host.Uptime(); err == nil {
		stats["host_uptime_seconds"] = strconv.FormatUint(uptime, 10)
	}

	return c.JSON(http.StatusOK, stats)
}

// LoggerMiddleware attaches a request-scoped logger carrying the request id,
// both to the echo context and to the request context.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		return next(c)
	}
}

// getLogger returns the request logger set by LoggerMiddleware.
func getLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get("logger").(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}
