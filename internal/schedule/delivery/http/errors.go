package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schedcal/internal/schedule"
	"schedcal/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors
// surface as an opaque 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return response.NewHTTPError(404, "schedule not found")
	case errors.Is(err, schedule.ErrInvalidTimeRange),
		errors.Is(err, schedule.ErrIncompleteTimeRange):
		return response.NewHTTPError(400, err.Error())
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}

// renderError writes an HTML error page for the page handlers. The JSON
// API uses response.Error instead.
func (h *handler) renderError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	message := err.Error()

	var httpErr *response.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
		message = httpErr.Message
	}

	c.HTML(status, "error.html", gin.H{"Status": status, "Message": message})
}
