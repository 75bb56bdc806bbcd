package handler

import (
	"github.com/labstack/echo/v4"

	"titlecheck/internal/delivery/api/response"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Health(c)
}
