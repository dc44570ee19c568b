package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/avasseur/portfolio-builder/internal/constants"
	"github.com/avasseur/portfolio-builder/internal/email"
	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"github.com/avasseur/portfolio-builder/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidResetToken    = errors.New("invalid or expired token")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

const resetTokenTTL = time.Hour

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration, login and password-reset logic.
type AuthService struct {
	userRepo repository.UserRepository
	mailer   email.Sender
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, mailer email.Sender) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Register creates a new user and sends a best-effort verification email.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	emailAddr := strings.TrimSpace(strings.ToLower(input.Email))
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if l := len(username); l < constants.MinUsernameLength || l > constants.MaxUsernameLength {
		return nil, NewValidationError("username", fmt.Sprintf("username must be between %d and %d characters", constants.MinUsernameLength, constants.MaxUsernameLength))
	}
	if !emailPattern.MatchString(emailAddr) {
		return nil, NewValidationError("email", "invalid email address")
	}
	if l := len(firstName); l < constants.MinNameLength || l > constants.MaxNameLength {
		return nil, NewValidationError("first_name", fmt.Sprintf("must be between %d and %d characters", constants.MinNameLength, constants.MaxNameLength))
	}
	if l := len(lastName); l < constants.MinNameLength || l > constants.MaxNameLength {
		return nil, NewValidationError("last_name", fmt.Sprintf("must be between %d and %d characters", constants.MinNameLength, constants.MaxNameLength))
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(emailAddr); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	verificationToken, err := utils.GenerateToken(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Username:               username,
		Email:                  emailAddr,
		PasswordHash:           string(hashedPassword),
		FirstName:              firstName,
		LastName:               lastName,
		EmailVerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique indexes are the source of truth; the pre-checks above
		// can race with a concurrent registration. Re-check which key the
		// winner took so the conflict names the right field.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, ferr := s.userRepo.FindByEmail(emailAddr); ferr == nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Mail failures never fail the registration.
	if err := s.mailer.SendVerificationEmail(user.Email, user.FullName(), verificationToken); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user. The error
// is the same whether the email is unknown or the password wrong.
func (s *AuthService) Login(emailAddr, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(emailAddr)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// VerifyEmail marks the account associated with the token as verified.
func (s *AuthService) VerifyEmail(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = ""
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}

	return user, nil
}

// RequestPasswordReset issues a reset token for the account, if it exists,
// and emails the reset link. It reveals nothing about account existence:
// the outcome is identical for unknown emails.
func (s *AuthService) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(emailAddr)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	token, err := utils.GenerateToken(16)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = token
	user.ResetTokenExpires = &expiry
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.FullName(), token); err != nil {
		log.Printf("Failed to send password reset email to %s: %v", user.Email, err)
	}

	return nil
}

// ResetPassword consumes a reset token and installs a new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < constants.MinPasswordLength {
		return NewValidationError("password", fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user.PasswordHash = string(hashedPassword)
	user.ResetToken = ""
	user.ResetTokenExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
