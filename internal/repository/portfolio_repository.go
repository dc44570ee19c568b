package repository

import (
	"time"

	"github.com/avasseur/portfolio-builder/internal/models"
	"gorm.io/gorm"
)

// GormPortfolioRepository is a GORM implementation of PortfolioRepository
type GormPortfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &GormPortfolioRepository{db: db}
}

// Create creates a new portfolio
func (r *GormPortfolioRepository) Create(portfolio *models.Portfolio) error {
	return r.db.Create(portfolio).Error
}

// FindByID finds a portfolio by ID
func (r *GormPortfolioRepository) FindByID(id uint64) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.First(&portfolio, id).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// FindByUserID finds the portfolio owned by a user
func (r *GormPortfolioRepository) FindByUserID(userID uint64) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.Where("user_id = ?", userID).First(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// FindPublicBySlug finds a public portfolio by its public URL. The owner is
// preloaded because every public projection needs the owner's name.
func (r *GormPortfolioRepository) FindPublicBySlug(slug string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.
		Preload("User").
		Where("public_url = ? AND is_public = ?", slug, true).
		First(&portfolio).Error
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// Update persists changes to a portfolio
func (r *GormPortfolioRepository) Update(portfolio *models.Portfolio) error {
	return r.db.Save(portfolio).Error
}

// UpdateCV replaces the three CV fields in one statement so a failed upload
// or import never leaves them half-written.
func (r *GormPortfolioRepository) UpdateCV(portfolioID uint64, filename, url string, uploadedAt time.Time) error {
	return r.db.Model(&models.Portfolio{}).
		Where("id = ?", portfolioID).
		Updates(map[string]interface{}{
			"cv_filename":    filename,
			"cv_url":         url,
			"cv_uploaded_at": uploadedAt,
		}).Error
}

// IncrementViews bumps views_count atomically and stamps last_viewed
func (r *GormPortfolioRepository) IncrementViews(portfolioID uint64, at time.Time) error {
	return r.db.Model(&models.Portfolio{}).
		Where("id = ?", portfolioID).
		Updates(map[string]interface{}{
			"views_count": gorm.Expr("views_count + ?", 1),
			"last_viewed": at,
		}).Error
}

// SearchPublic finds public portfolios whose owner name, username or bio
// matches the query
func (r *GormPortfolioRepository) SearchPublic(query string, limit int) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	pattern := "%" + query + "%"
	err := r.db.
		Preload("User").
		Joins("JOIN users ON users.id = portfolios.user_id").
		Where("portfolios.is_public = ?", true).
		Where(
			r.db.Where("users.username LIKE ?", pattern).
				Or("users.first_name LIKE ?", pattern).
				Or("users.last_name LIKE ?", pattern).
				Or("portfolios.bio LIKE ?", pattern),
		).
		Limit(limit).
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}
