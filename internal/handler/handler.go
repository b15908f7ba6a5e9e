package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "rxinsight/internal/errors"
)

// writeError maps a domain error to its status code and the standard
// {error, code} body. This is the only place statuses leave the service layer;
// no SQL text or stack detail ever crosses it.
func writeError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
