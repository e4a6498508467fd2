package interview

import (
	"errors"
	"log"
	"net/http"

	"interviewcoach/internal/completion"
	"interviewcoach/internal/config"
	"interviewcoach/internal/httputil"

	"github.com/gin-gonic/gin"
)

// Handler handles POST /api/interview. It answers 400 on validation failure,
// 500 when the completion call fails, and 200 otherwise.
func Handler(client completion.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := httputil.RequestIDFrom(c)

		req := bindRequest(c, reqID)
		out, err := Evaluate(c.Request.Context(), client, req)
		if err != nil {
			if errors.Is(err, ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ErrValidation.Error()})
				return
			}
			log.Printf("[%s] interview backend: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "backend_error", "detail": err.Error()})
			return
		}

		if u, ok := out.(Unparsed); ok {
			log.Printf("[%s] interview: model output not JSON, returning raw text (%d bytes)", reqID, len(u.Raw))
		}
		c.JSON(http.StatusOK, out.Body())
	}
}

// bindRequest decodes the JSON body. An absent, malformed, or oversized body
// is treated as an empty request so it fails validation.
func bindRequest(c *gin.Context, reqID string) Request {
	var req Request
	if err := httputil.BindJSON(c, &req, config.MaxInterviewBodyBytes); err != nil {
		if httputil.IsBodyTooLarge(err) {
			log.Printf("[%s] interview: request body too large", reqID)
		}
		return Request{}
	}
	return req
}
