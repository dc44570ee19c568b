package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"time"

	"github.com/avasseur/portfolio-builder/internal/constants"
	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"github.com/avasseur/portfolio-builder/internal/uploads"
	"github.com/avasseur/portfolio-builder/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrSlugExhausted     = errors.New("could not allocate a unique public URL")
	ErrCVFetchFailed     = errors.New("could not fetch CV from URL")
)

// Slug collisions on an 8-hex-char suffix are rare; a few retries are
// plenty before giving up.
const slugAttempts = 5

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// PortfolioService owns portfolio provisioning and portfolio-level edits.
type PortfolioService struct {
	userRepo      repository.UserRepository
	portfolioRepo repository.PortfolioRepository
	contentRepo   repository.ContentRepository
	store         *uploads.Store
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(userRepo repository.UserRepository, portfolioRepo repository.PortfolioRepository, contentRepo repository.ContentRepository, store *uploads.Store) *PortfolioService {
	return &PortfolioService{
		userRepo:      userRepo,
		portfolioRepo: portfolioRepo,
		contentRepo:   contentRepo,
		store:         store,
	}
}

// GetOrCreate returns the user's portfolio, creating a default one on first
// access. Calling it twice for the same user returns the same portfolio.
// The unique user_id constraint is the serialization point for concurrent
// first accesses; on a losing race the winner's row is returned.
func (s *PortfolioService) GetOrCreate(userID uint64) (*models.Portfolio, error) {
	portfolio, err := s.portfolioRepo.FindByUserID(userID)
	if err == nil {
		return portfolio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up portfolio: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		suffix, err := utils.GenerateToken(4)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}

		portfolio := &models.Portfolio{
			UserID:              user.ID,
			PublicURL:           fmt.Sprintf("%s-%s", user.Username, suffix),
			Bio:                 fmt.Sprintf("Hello, I am %s.", user.FullName()),
			ThemePrimaryColor:   models.DefaultPrimaryColor,
			ThemeSecondaryColor: models.DefaultSecondaryColor,
			ThemeFontFamily:     models.DefaultFontFamily,
			ThemeLayout:         models.DefaultLayout,
			IsPublic:            true,
		}

		err = s.portfolioRepo.Create(portfolio)
		if err == nil {
			return portfolio, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create portfolio: %w", err)
		}

		// Either the slug collided or a concurrent request provisioned the
		// portfolio first. Prefer the existing row when there is one.
		if existing, ferr := s.portfolioRepo.FindByUserID(user.ID); ferr == nil {
			return existing, nil
		}
	}

	return nil, ErrSlugExhausted
}

// ProfileInput carries a partial profile update. Nil fields are left
// untouched.
type ProfileInput struct {
	Bio      *string
	Location *string
	Phone    *string
	Website  *string
	Linkedin *string
	Github   *string
}

// UpdateProfile applies a partial update to the portfolio's profile fields.
// Theme and CV fields are never touched here.
func (s *PortfolioService) UpdateProfile(userID uint64, input ProfileInput) (*models.Portfolio, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		portfolio.Bio = *input.Bio
	}
	if input.Location != nil {
		portfolio.Location = *input.Location
	}
	if input.Phone != nil {
		portfolio.Phone = *input.Phone
	}
	if input.Website != nil {
		portfolio.Website = *input.Website
	}
	if input.Linkedin != nil {
		portfolio.Linkedin = *input.Linkedin
	}
	if input.Github != nil {
		portfolio.Github = *input.Github
	}

	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	return portfolio, nil
}

// UpdateProfileImage stores a new profile image and records its filename.
func (s *PortfolioService) UpdateProfileImage(userID uint64, originalName string, src io.Reader) (*models.Portfolio, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	filename, err := s.store.SaveProfileImage(userID, originalName, src)
	if err != nil {
		if errors.Is(err, uploads.ErrDisallowedExtension) {
			return nil, NewValidationError("profile_image", "allowed extensions: png, jpg, jpeg, gif")
		}
		return nil, fmt.Errorf("failed to save profile image: %w", err)
	}

	portfolio.ProfileImage = filename
	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	return portfolio, nil
}

// SetVisibility toggles whether the portfolio is publicly reachable.
func (s *PortfolioService) SetVisibility(userID uint64, isPublic bool) (*models.Portfolio, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	portfolio.IsPublic = isPublic
	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	return portfolio, nil
}

// ThemeInput carries a full replacement of the four theme fields.
type ThemeInput struct {
	PrimaryColor   string
	SecondaryColor string
	FontFamily     string
	Layout         string
}

// UpdateTheme replaces the theme. All four fields are validated before
// anything is persisted.
func (s *PortfolioService) UpdateTheme(userID uint64, input ThemeInput) (*models.Portfolio, error) {
	if !hexColorPattern.MatchString(input.PrimaryColor) {
		return nil, NewValidationError("primary_color", "must be a #RRGGBB color")
	}
	if !hexColorPattern.MatchString(input.SecondaryColor) {
		return nil, NewValidationError("secondary_color", "must be a #RRGGBB color")
	}
	if !slices.Contains(models.ThemeFonts, input.FontFamily) {
		return nil, NewValidationError("font_family", "unknown font family")
	}
	if !slices.Contains(models.ThemeLayouts, input.Layout) {
		return nil, NewValidationError("layout", "unknown layout")
	}

	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	portfolio.ThemePrimaryColor = input.PrimaryColor
	portfolio.ThemeSecondaryColor = input.SecondaryColor
	portfolio.ThemeFontFamily = input.FontFamily
	portfolio.ThemeLayout = input.Layout

	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}
	return portfolio, nil
}

// UploadCV stores an uploaded PDF and records filename, download URL and
// upload time in one step.
func (s *PortfolioService) UploadCV(userID uint64, originalName string, src io.Reader) (*models.Portfolio, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	filename, err := s.store.SaveCV(userID, originalName, src)
	if err != nil {
		if errors.Is(err, uploads.ErrDisallowedExtension) {
			return nil, NewValidationError("cv_file", "CV must be a PDF file")
		}
		return nil, fmt.Errorf("failed to save CV: %w", err)
	}

	return s.recordCV(portfolio, filename)
}

// ImportCV fetches a remote PDF and installs it as the CV. A failed fetch
// leaves the existing CV fields untouched.
func (s *PortfolioService) ImportCV(userID uint64, url, suggestedName string) (*models.Portfolio, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	filename, err := s.store.FetchCV(userID, url, suggestedName)
	if err != nil {
		if errors.Is(err, uploads.ErrFetchFailed) || errors.Is(err, uploads.ErrNotPDF) {
			log.Printf("CV import for user %d failed: %v", userID, err)
			return nil, fmt.Errorf("%w: %v", ErrCVFetchFailed, err)
		}
		return nil, fmt.Errorf("failed to import CV: %w", err)
	}

	return s.recordCV(portfolio, filename)
}

func (s *PortfolioService) recordCV(portfolio *models.Portfolio, filename string) (*models.Portfolio, error) {
	now := time.Now().UTC()
	url := "/uploads/cv/" + filename
	if err := s.portfolioRepo.UpdateCV(portfolio.ID, filename, url, now); err != nil {
		return nil, fmt.Errorf("failed to record CV: %w", err)
	}

	portfolio.CVFilename = filename
	portfolio.CVURL = url
	portfolio.CVUploadedAt = &now
	return portfolio, nil
}

// DashboardSummary aggregates the owner-facing counters.
type DashboardSummary struct {
	Portfolio   *models.Portfolio
	Projects    int64
	Experiences int64
	Education   int64
	Skills      int64
}

// Dashboard assembles the owner's portfolio together with collection counts.
func (s *PortfolioService) Dashboard(userID uint64) (*DashboardSummary, error) {
	portfolio, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{Portfolio: portfolio}
	if summary.Projects, err = s.contentRepo.CountProjects(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if summary.Experiences, err = s.contentRepo.CountExperiences(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to count experiences: %w", err)
	}
	if summary.Education, err = s.contentRepo.CountEducation(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to count education: %w", err)
	}
	if summary.Skills, err = s.contentRepo.CountSkills(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to count skills: %w", err)
	}
	return summary, nil
}

// SearchPublic finds public portfolios matching the query.
func (s *PortfolioService) SearchPublic(query string) ([]models.Portfolio, error) {
	if query == "" {
		return []models.Portfolio{}, nil
	}
	portfolios, err := s.portfolioRepo.SearchPublic(query, constants.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search portfolios: %w", err)
	}
	return portfolios, nil
}
