package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowHome(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Username": username,
	})
}

func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is the about page of the My Memo app."})
}

func (h *Handler) Health(c *gin.Context) {
	status := gin.H{"status": "healthy"}

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
		}
	}

	c.JSON(http.StatusOK, status)
}
