package repository

import (
	"time"

	"github.com/avasseur/portfolio-builder/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByResetToken finds a user holding the given password-reset token
	FindByResetToken(token string) (*models.User, error)

	// FindByVerificationToken finds a user by email-verification token
	FindByVerificationToken(token string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// PortfolioRepository defines the interface for portfolio data access
type PortfolioRepository interface {
	// Create creates a new portfolio
	Create(portfolio *models.Portfolio) error

	// FindByID finds a portfolio by ID
	FindByID(id uint64) (*models.Portfolio, error)

	// FindByUserID finds the portfolio owned by a user
	FindByUserID(userID uint64) (*models.Portfolio, error)

	// FindPublicBySlug finds a portfolio by public URL, restricted to
	// public ones. Private portfolios are not distinguishable from
	// missing ones.
	FindPublicBySlug(slug string) (*models.Portfolio, error)

	// Update persists changes to a portfolio
	Update(portfolio *models.Portfolio) error

	// UpdateCV replaces the three CV fields in a single statement
	UpdateCV(portfolioID uint64, filename, url string, uploadedAt time.Time) error

	// IncrementViews bumps views_count and stamps last_viewed
	IncrementViews(portfolioID uint64, at time.Time) error

	// SearchPublic finds public portfolios matching the query against
	// username, first/last name or bio
	SearchPublic(query string, limit int) ([]models.Portfolio, error)
}

// ContentRepository defines data access for the four owned collections.
// Every single-entity lookup is scoped by portfolio ID so that cross-tenant
// access surfaces as a not-found error.
type ContentRepository interface {
	CreateProject(project *models.Project) error
	FindProject(id, portfolioID uint64) (*models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id, portfolioID uint64) error
	ListProjects(portfolioID uint64) ([]models.Project, error)
	CountProjects(portfolioID uint64) (int64, error)

	CreateExperience(experience *models.Experience) error
	FindExperience(id, portfolioID uint64) (*models.Experience, error)
	UpdateExperience(experience *models.Experience) error
	DeleteExperience(id, portfolioID uint64) error
	ListExperiences(portfolioID uint64) ([]models.Experience, error)
	CountExperiences(portfolioID uint64) (int64, error)

	CreateEducation(education *models.Education) error
	FindEducation(id, portfolioID uint64) (*models.Education, error)
	UpdateEducation(education *models.Education) error
	DeleteEducation(id, portfolioID uint64) error
	ListEducation(portfolioID uint64) ([]models.Education, error)
	CountEducation(portfolioID uint64) (int64, error)

	CreateSkill(skill *models.Skill) error
	FindSkill(id, portfolioID uint64) (*models.Skill, error)
	UpdateSkill(skill *models.Skill) error
	DeleteSkill(id, portfolioID uint64) error
	ListSkills(portfolioID uint64) ([]models.Skill, error)
	CountSkills(portfolioID uint64) (int64, error)
}
