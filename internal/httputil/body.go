package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrBodyTooLarge is returned by BindJSON when the body exceeds its limit.
var ErrBodyTooLarge = errors.New("request body too large")

// BindJSON decodes the JSON request body into dst, reading at most limit bytes.
func BindJSON(c *gin.Context, dst any, limit int64) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	if err := c.ShouldBindJSON(dst); err != nil {
		if IsBodyTooLarge(err) {
			return fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return err
	}
	return nil
}

// IsBodyTooLarge reports whether the error indicates the request body exceeded MaxBytesReader.
func IsBodyTooLarge(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBodyTooLarge) {
		return true
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
