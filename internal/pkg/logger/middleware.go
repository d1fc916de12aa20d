package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			fields := []Field{
				Int("status", statusCode),
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("HTTP request", fields...)
				return err
			}

			if statusCode >= 500 {
				logger.Error("HTTP request", fields...)
			} else if statusCode >= 400 {
				logger.Warn("HTTP request", fields...)
			} else {
				logger.Info("HTTP request", fields...)
			}
			return nil
		}
	}
}
