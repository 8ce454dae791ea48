package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todo-mongo/internal/pkg/logger"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Printf is where request lines go.
type Printf func(format string, v ...interface{})

// Logger configuration
type LoggerConfig struct {
	EnableColors    bool
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodySize     int64 // Max body size to log (in bytes)
	SkipPaths       []string
	Output          Printf
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:    true,
		LogRequestBody:  true,
		LogResponseBody: false, // errors are always logged
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health", "/swagger/*any"},
		Output:          logger.Info,
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	if config.Output == nil {
		config.Output = logger.Info
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + truncateString(raw, 100)
		}

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[Request body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), c.GetHeader("Content-Type"))
				}
			}
		}

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		var responseBody string
		if writer.body.Len() > 0 && (config.LogResponseBody || status >= 400) {
			responseBody = sanitizeBody(writer.body.String(), "application/json")
		}

		entry := requestEntry{
			requestID:    c.GetString(RequestIDKey),
			method:       method,
			path:         path,
			ip:           c.ClientIP(),
			status:       status,
			latency:      time.Since(start),
			size:         writer.size,
			requestBody:  requestBody,
			responseBody: responseBody,
			errors:       c.Errors.ByType(gin.ErrorTypePrivate).String(),
		}
		config.Output("%s", entry.format(config.EnableColors))
	}
}

type requestEntry struct {
	requestID    string
	method       string
	path         string
	ip           string
	status       int
	latency      time.Duration
	size         int64
	requestBody  string
	responseBody string
	errors       string
}

func (e requestEntry) format(colors bool) string {
	var methodColor, statusColor, gray, reset string
	if colors {
		methodColor = getMethodColor(e.method)
		statusColor = getStatusColor(e.status)
		gray = ColorGray
		reset = ColorReset
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%-6s%s %s %s%d %s%s %v %s",
		methodColor, e.method, reset,
		e.path,
		statusColor, e.status, statusFlag(e.status), reset,
		e.latency, formatSize(e.size))
	if e.ip != "" {
		fmt.Fprintf(&b, " %sip=%s%s", gray, e.ip, reset)
	}
	if e.requestID != "" {
		fmt.Fprintf(&b, " %srid=%s%s", gray, e.requestID, reset)
	}
	if e.requestBody != "" {
		fmt.Fprintf(&b, "\n%s    → body:%s %s", gray, reset, e.requestBody)
	}
	if e.responseBody != "" {
		fmt.Fprintf(&b, "\n%s    ← body:%s %s", gray, reset, e.responseBody)
	}
	if e.errors != "" {
		fmt.Fprintf(&b, "\n%s    errors:%s %s", gray, reset, strings.TrimSpace(e.errors))
	}
	return b.String()
}

// Size-limited response writer
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)

	if w.size+int64(len(b)) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)

	return n, err
}

func statusFlag(status int) string {
	switch {
	case status >= 500:
		return "SERVER ERROR"
	case status >= 400:
		return "CLIENT ERROR"
	case status >= 300:
		return "REDIRECT"
	case status >= 200:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	case "PATCH":
		return ColorPurple
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if len(body) > 1024 {
		return "[Body too large to log]"
	}

	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			sanitized := hideSensitiveFields(jsonData)
			if formatted, err := json.Marshal(sanitized); err == nil {
				return string(formatted)
			}
		}
	}

	return truncateString(body, 200)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	for _, s := range []string{"password", "token", "secret", "credential"} {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
