// visitor.go - per-visitor identity for stored page preferences

package web

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	// one year, matching the default preference retention
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

var hashingSalt = generateSalt()

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash a visitor id before it is written to the log (consistent per process)
func hashVisitor(id string) string {
	hash := sha256.New()
	hash.Write([]byte(id + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware that gives every page visitor a stable random id. The id only
// keys stored preferences; no request data is recorded.
func (s *Server) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip static files and probes
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err == nil {
			if _, perr := uuid.Parse(id); perr != nil {
				err = perr
			}
		}
		if err != nil {
			id = uuid.NewString()
		}
		// re-sent on every visit so the id outlives its first year
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitorCookie, id, visitorCookieMaxAge, "/", "", s.cfg.CookieSecure, true)

		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

// Remove preferences that have not been written or read within the
// retention window
func (s *Server) cleanupStalePreferences(ctx context.Context) {
	if s.cfg.PreferenceRetention <= 0 {
		return
	}

	cleanup := func() {
		rowsDeleted, err := s.db.CleanupPreferences(ctx, s.cfg.PreferenceRetention)
		if err != nil {
			log.Printf("Error cleaning up stored preferences: %v", err)
			return
		}
		if rowsDeleted > 0 {
			log.Printf("Privacy cleanup: Removed %d preferences older than %s", rowsDeleted, s.cfg.PreferenceRetention)
		}
	}

	cleanup()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}
