package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// body is a raw JSON object. Write endpoints bind into it instead of structs
// so that missing, blank and unexpected fields stay distinguishable — each
// produces a different error in a fixed precedence.
type body map[string]any

// bindBody decodes the request body into a body map. An absent body counts
// as an empty object. Responds 400 itself on malformed JSON.
func bindBody(c *gin.Context) (body, bool) {
	b := body{}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&b); err != nil {
			errorMessage(c, http.StatusBadRequest, "malformed body")
			return nil, false
		}
	}
	return b, true
}

// hasExtraFields reports whether the payload carries keys beyond the allowed set
func (b body) hasExtraFields(allowed ...string) bool {
	for key := range b {
		if !slices.Contains(allowed, key) {
			return true
		}
	}
	return false
}

// missing reports whether the field is absent from the payload entirely
func (b body) missing(field string) bool {
	_, ok := b[field]
	return !ok
}

// blank reports whether the field is null or a whitespace-only string.
// Non-string values other than null are never blank.
func (b body) blank(field string) bool {
	value, ok := b[field]
	if !ok || value == nil {
		return true
	}
	s, isString := value.(string)
	return isString && strings.TrimSpace(s) == ""
}

// str coerces a field to its string form for storage and filtering
func (b body) str(field string) string {
	value := b[field]
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// asNumber converts a JSON value to a finite float64. Numeric strings are
// accepted; NaN and infinities are rejected.
func asNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// pathID parses a positive integer path parameter. Anything else is treated
// as a missing resource, not a bad request.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt parses a non-negative integer query value, silently falling back
// to the default on anything invalid.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
