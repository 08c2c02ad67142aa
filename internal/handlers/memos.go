package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hagd0520/my-memo/internal/models"
	"github.com/hagd0520/my-memo/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMemoRequest struct {
	Title   string `json:"title" binding:"max=100"`
	Content string `json:"content" binding:"max=1000"`
}

// UpdateMemoRequest distinguishes "field absent" (nil, leave unchanged) from
// "field present but empty" (replace with the empty string).
type UpdateMemoRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=100"`
	Content *string `json:"content" binding:"omitempty,max=1000"`
}

// currentUser resolves the session identity set by AuthRequired to its user
// record. A session for a user that no longer exists answers 404.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, errorJSON(kindUnauthorized, "Not authorized"))
		return nil, false
	}

	user, err := h.accountService.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorJSON(kindNotFound, "User not found"))
		} else {
			h.logger.Error("Failed to resolve session user", "username", username, "error", err)
			c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Database error"))
		}
		return nil, false
	}

	return user, true
}

func (h *Handler) CreateMemo(c *gin.Context) {
	var req CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, err.Error()))
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memo, err := h.memoService.Create(user.ID, services.CreateMemoInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.logger.Error("Failed to create memo", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to create memo"))
		return
	}

	c.JSON(http.StatusOK, memo)
}

// ListMemos is the public listing: every memo, every owner, insertion order.
func (h *Handler) ListMemos(c *gin.Context) {
	memos, err := h.memoService.ListAll()
	if err != nil {
		h.logger.Error("Failed to list memos", "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to list memos"))
		return
	}

	out := make([]gin.H, 0, len(memos))
	for _, memo := range memos {
		out = append(out, gin.H{"id": memo.ID, "title": memo.Title, "content": memo.Content})
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListMyMemos(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memos, err := h.memoService.ListOwned(user.ID)
	if err != nil {
		h.logger.Error("Failed to list memos", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to list memos"))
		return
	}

	c.HTML(http.StatusOK, "memos.html", gin.H{
		"Username": user.Username,
		"Memos":    memos,
	})
}

func (h *Handler) UpdateMemo(c *gin.Context) {
	memoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, "Invalid memo id"))
		return
	}

	var req UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, err.Error()))
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memo, err := h.memoService.Update(user.ID, uint(memoID), services.UpdateMemoInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, services.ErrMemoNotFound) {
			c.JSON(http.StatusNotFound, errorJSON(kindNotFound, "Memo not found"))
			return
		}
		h.logger.Error("Failed to update memo", "user_id", user.ID, "memo_id", memoID, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to update memo"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": memo.ID, "title": memo.Title, "content": memo.Content})
}

func (h *Handler) DeleteMemo(c *gin.Context) {
	memoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorJSON(kindValidation, "Invalid memo id"))
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.memoService.Delete(user.ID, uint(memoID)); err != nil {
		if errors.Is(err, services.ErrMemoNotFound) {
			c.JSON(http.StatusNotFound, errorJSON(kindNotFound, "Memo not found"))
			return
		}
		h.logger.Error("Failed to delete memo", "user_id", user.ID, "memo_id", memoID, "error", err)
		c.JSON(http.StatusInternalServerError, errorJSON(kindStore, "Failed to delete memo"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted"})
}
