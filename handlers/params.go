package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"servicehub/middleware"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// pathID reads a positive integer path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryFloat parses an optional float query parameter. Missing, malformed and
// non-finite values all read as absent.
func queryFloat(c *gin.Context, keys ...string) *float64 {
	for _, k := range keys {
		raw := strings.TrimSpace(c.Query(k))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return nil
}

// queryString returns the first non-empty query parameter among keys.
func queryString(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

// queryID parses an optional positive integer query parameter.
func queryID(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryLimit parses an optional positive "limit" query parameter.
func queryLimit(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// currentUserID returns the authenticated caller or answers 401.
func currentUserID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
	}
	return id, ok
}
