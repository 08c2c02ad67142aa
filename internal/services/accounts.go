package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hagd0520/my-memo/internal/models"
	"github.com/hagd0520/my-memo/pkg/utils"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername is returned when the users.username unique index
	// rejects an insert.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown-user and wrong-password so
	// callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewAccountService(db *gorm.DB, logger *slog.Logger) *AccountService {
	return &AccountService{
		db:     db,
		logger: logger,
	}
}

// Register creates a user with a bcrypt-hashed password. Uniqueness is left
// to the storage-level constraint rather than a check-then-insert, so
// concurrent signups for the same name race safely.
func (s *AccountService) Register(username, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &newUser, nil
}

// Authenticate verifies a username/password pair. Unknown user and wrong
// password both come back as ErrInvalidCredentials.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", result.Error)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// FindByUsername resolves a session identity to its user record.
func (s *AccountService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite and postgres report constraint violations differently and the
	// drivers do not always translate them.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
