package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request. Device firmware is
// identified by its User-Agent, so it is logged next to the status.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(sr, r)

		level := zerolog.InfoLevel
		if sr.status >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("path", redactDeviceToken(r.URL.Path)).
			Int("status", sr.statusCode()).
			Int("size", sr.size).
			Dur("duration", time.Since(start)).
			Str("user_agent", r.UserAgent()).
			Send()
	})
}

// statusRecorder captures the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status != 0 {
		return
	}
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.WriteHeader(http.StatusOK)
	}
	n, err := s.ResponseWriter.Write(b)
	s.size += n
	return n, err
}

// statusCode reports 200 for handlers that never wrote anything.
func (s *statusRecorder) statusCode() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

const redactedToken = "***"

// redactDeviceToken hides the token segment of device API paths.
func redactDeviceToken(path string) string {
	rest, ok := strings.CutPrefix(path, koboPrefix)
	if !ok || rest == "" {
		return path
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return koboPrefix + redactedToken + rest[i:]
	}
	return koboPrefix + redactedToken
}
