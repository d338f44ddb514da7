package http

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance with every route of s registered.
func NewEcho(s *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{Validator: validator.New()}

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))

	RegisterRoutes(e, s)
	return e
}

// RegisterRoutes adds the routes of s to e.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/statistics", s.GetStatistics)
	v1.GET("/report", s.GetReport)
	v1.GET("/summary", s.GetPurchaseSummary)
	v1.POST("/reports/send", s.SendReport)
	v1.GET("/parcels/:id/locker", s.LocateParcel)
	v1.POST("/lockers/search", s.SearchLocker)
	v1.POST("/lockers/notify", s.NotifyFreeLocker)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
