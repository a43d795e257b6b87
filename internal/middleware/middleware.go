package middleware

import (
	"net/http"
	"time"

	"platra/internal/session"

	"github.com/rs/zerolog"
)

// CORS allows credentialed requests from allowedOrigin only.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")
			if r.Header.Get("Origin") == allowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MaxBodySize limits request bodies to limit bytes. Reading past it fails with
// *http.MaxBytesError.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionConfig describes the session cookie.
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// Session attaches the browser session named by the session cookie to the request
// context. A missing, invalid or expired cookie, or one naming an evicted session, starts
// a new session. The cookie is reissued on every request so its expiry slides with use.
func Session(store *session.Store, tokens *session.Tokens, cfg SessionConfig, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip sessions for the health check endpoint
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			sess := lookup(r, store, tokens, cfg.CookieName, logger)
			if sess == nil {
				var err error
				sess, err = store.Create()
				if err != nil {
					logger.Error().Err(err).Msg("failed to create session")
					writeInternalError(w)
					return
				}
			}

			token, err := tokens.Issue(sess.ID)
			if err != nil {
				logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to issue session token")
				writeInternalError(w)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(tokens.TTL().Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), sess)))
		})
	}
}

func lookup(r *http.Request, store *session.Store, tokens *session.Tokens, cookieName string, logger zerolog.Logger) *session.Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	id, err := tokens.Parse(cookie.Value)
	if err != nil {
		logger.Debug().Err(err).Msg("discarding session cookie")
		return nil
	}

	sess, ok := store.Get(id)
	if !ok {
		logger.Debug().Str("session_id", id).Msg("session expired")
		return nil
	}
	return sess
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					writeInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"success":false,"code":"INTERNAL_ERROR","message":"Internal server error"}`))
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
