package respond

import (
	"errors"
	"net/http"

	"artgallery-api/internal/domain/works"
	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// OK writes {success: true, ...body}.
func OK(c *gin.Context, body gin.H) {
	out := gin.H{"success": true}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(http.StatusOK, out)
}

// Fail writes {success: false, error: msg}.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// Status maps a store error to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, works.ErrInvalidID), errors.Is(err, works.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, works.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error maps err to a status and writes the envelope. fallback is the client
// message for unexpected failures, which are also logged.
func Error(c *gin.Context, err error, fallback string, fields logging.Fields) {
	status := Status(err)
	switch status {
	case http.StatusNotFound:
		Fail(c, status, "Artwork not found")
	case http.StatusBadRequest:
		if errors.Is(err, works.ErrInvalidID) {
			Fail(c, status, "Invalid artwork ID")
			return
		}
		logging.FromContext(c.Request.Context()).Warn(fallback, withError(fields, err))
		Fail(c, status, fallback)
	default:
		logging.FromContext(c.Request.Context()).Error(fallback, err, fields)
		Fail(c, status, fallback)
	}
}

func withError(fields logging.Fields, err error) logging.Fields {
	out := make(logging.Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}

// ArtworkID reads the named path parameter and rejects malformed ids with 400
// before any store call is made.
func ArtworkID(c *gin.Context, param string) (string, bool) {
	id := c.Param(param)
	if !works.ValidID(id) {
		Fail(c, http.StatusBadRequest, "Invalid artwork ID")
		return "", false
	}
	return id, true
}
