package handlers

import (
	"time"

	"github.com/hagd0520/my-memo/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisstore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

const sessionName = "my_memo_session"

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}

	// Middleware
	r.Use(h.RequestIDMiddleware())
	if h.cfg.RequestTimeoutSeconds > 0 {
		r.Use(h.RequestTimeoutMiddleware(time.Duration(h.cfg.RequestTimeoutSeconds) * time.Second))
	}
	r.Use(sessions.Sessions(sessionName, h.sessionStore()))

	r.GET("/health", h.Health)

	// Public Routes
	r.GET("/", h.ShowHome)
	r.GET("/about", h.About)
	r.GET("/memos", h.ListMemos)
	r.POST("/logout", h.Logout)

	// Credential endpoints get brute-force throttling
	auth := r.Group("/")
	if rateLimiter != nil {
		auth.Use(h.RateLimitMiddleware(rateLimiter))
	}
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("/memos", h.CreateMemo)
		authorized.GET("/memos/me", h.ListMyMemos)
		authorized.PUT("/memos/:id", h.UpdateMemo)
		authorized.DELETE("/memos/:id", h.DeleteMemo)
	}

	return r
}

// sessionStore picks the backing store for session cookies: redis when
// configured, otherwise a signed cookie. Both enforce the configured MaxAge.
func (h *Handler) sessionStore() sessions.Store {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   h.cfg.SessionMaxAge,
		HttpOnly: true,
	}

	secret := []byte(h.cfg.SessionSecret)

	if h.cfg.RedisURL != "" {
		store, err := redisstore.NewStore(10, "tcp", h.cfg.RedisURL, h.cfg.RedisPassword, secret)
		if err == nil {
			store.Options(opts)
			return store
		}
		h.logger.Warn("Redis session store unavailable, falling back to cookie store", "error", err)
	}

	store := cookie.NewStore(secret)
	store.Options(opts)
	return store
}
