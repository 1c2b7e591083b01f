package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminRealm = `Basic realm="Mangal Admin", charset="UTF-8"`

// AdminAuth guards back-office routes with HTTP Basic credentials checked
// against a bcrypt hash. An empty hash disables the check.
func AdminAuth(username, passwordHash string) gin.HandlerFunc {
	if passwordHash == "" {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass)) != nil {
			c.Header("WWW-Authenticate", adminRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется авторизация"})
			return
		}
		c.Next()
	}
}

type requestLogLine struct {
	Time      string  `json:"time"`
	Status    int     `json:"status"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	LatencyMs float64 `json:"latency_ms"`
	ClientIP  string  `json:"client_ip"`
	Error     string  `json:"error,omitempty"`
}

// RequestLogger returns gin's logger, emitting one JSON object per request
// when format is "json". Level "warn" keeps only 4xx/5xx responses and
// "error" only 5xx.
func RequestLogger(format, level string) gin.HandlerFunc {
	conf := gin.LoggerConfig{}
	if format == "json" {
		conf.Formatter = jsonLogLine
	}
	if floor := minLoggedStatus(level); floor > 0 {
		conf.Skip = func(c *gin.Context) bool {
			return c.Writer.Status() < floor
		}
	}
	return gin.LoggerWithConfig(conf)
}

func minLoggedStatus(level string) int {
	switch strings.ToLower(level) {
	case "warn", "warning":
		return http.StatusBadRequest
	case "error":
		return http.StatusInternalServerError
	}
	return 0
}

func jsonLogLine(p gin.LogFormatterParams) string {
	line, err := json.Marshal(requestLogLine{
		Time:      p.TimeStamp.Format(time.RFC3339),
		Status:    p.StatusCode,
		Method:    p.Method,
		Path:      p.Path,
		LatencyMs: float64(p.Latency.Microseconds()) / 1000,
		ClientIP:  p.ClientIP,
		Error:     p.ErrorMessage,
	})
	if err != nil {
		return ""
	}
	return string(line) + "\n"
}
