package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hagd0520/my-memo/internal/models"

	"gorm.io/gorm"
)

// ErrMemoNotFound is returned when a memo does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable so a memo
// id cannot be probed for existence.
var ErrMemoNotFound = errors.New("memo not found")

type CreateMemoInput struct {
	Title   string
	Content string
}

// UpdateMemoInput carries partial updates. A nil field was absent from the
// request and is left unchanged; a non-nil empty string replaces the stored
// value.
type UpdateMemoInput struct {
	Title   *string
	Content *string
}

type MemoService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewMemoService(db *gorm.DB, logger *slog.Logger) *MemoService {
	return &MemoService{
		db:     db,
		logger: logger,
	}
}

func (s *MemoService) Create(ownerID uint, input CreateMemoInput) (*models.Memo, error) {
	newMemo := models.Memo{
		UserID:  ownerID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := s.db.Create(&newMemo).Error; err != nil {
		return nil, fmt.Errorf("failed to create memo: %w", err)
	}

	return &newMemo, nil
}

// ListAll returns every memo regardless of owner, in insertion order. This
// backs the public listing endpoint.
func (s *MemoService) ListAll() ([]models.Memo, error) {
	var memos []models.Memo
	if err := s.db.Order("id").Find(&memos).Error; err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	return memos, nil
}

func (s *MemoService) ListOwned(ownerID uint) ([]models.Memo, error) {
	var memos []models.Memo
	if err := s.db.Where("user_id = ?", ownerID).Order("id").Find(&memos).Error; err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	return memos, nil
}

func (s *MemoService) Update(ownerID, memoID uint, input UpdateMemoInput) (*models.Memo, error) {
	memo, err := s.findOwned(ownerID, memoID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		memo.Title = *input.Title
	}
	if input.Content != nil {
		memo.Content = *input.Content
	}

	if err := s.db.Save(memo).Error; err != nil {
		return nil, fmt.Errorf("failed to update memo: %w", err)
	}

	return memo, nil
}

// Delete removes the memo permanently. No soft-delete, no confirmation.
func (s *MemoService) Delete(ownerID, memoID uint) error {
	memo, err := s.findOwned(ownerID, memoID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(memo).Error; err != nil {
		return fmt.Errorf("failed to delete memo: %w", err)
	}

	return nil
}

// findOwned loads a memo scoped to its owner. The owner filter comes before
// the id match, so foreign memos surface as ErrMemoNotFound.
func (s *MemoService) findOwned(ownerID, memoID uint) (*models.Memo, error) {
	var memo models.Memo
	err := s.db.Where("user_id = ? AND id = ?", ownerID, memoID).First(&memo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoNotFound
		}
		return nil, fmt.Errorf("failed to load memo: %w", err)
	}
	return &memo, nil
}
