package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// freeTextKeys are the body fields rendered as text by clients. Identifiers,
// emails, image references and prices pass through untouched.
var freeTextKeys = map[string]bool{
	"title":       true,
	"category":    true,
	"mediumTools": true,
	"medium":      true,
	"description": true,
	"dimensions":  true,
	"visibility":  true,
	"userName":    true,
}

// SanitizeAndCleanInputMiddleware strips markup from free-text fields of JSON
// object bodies using bluemonday's strict policy.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		// numbers stay as json.Number so prices keep their exact text
		var body map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON"})
			return
		}

		for k, v := range body {
			if !freeTextKeys[k] {
				continue
			}
			if str, ok := v.(string); ok {
				// Sanitize escapes the text it keeps; only the markup should go
				body[k] = html.UnescapeString(policy.Sanitize(str))
			}
		}

		newBody, err := json.Marshal(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
