package repository

import (
	"github.com/avasseur/portfolio-builder/internal/models"
	"gorm.io/gorm"
)

// GormContentRepository is a GORM implementation of ContentRepository
type GormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &GormContentRepository{db: db}
}

// Display ordering is order_index ascending with the id as tiebreak, so
// entries created with the same index keep insertion order.
const displayOrder = "order_index ASC, id ASC"

// Projects

func (r *GormContentRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *GormContentRepository) FindProject(id, portfolioID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormContentRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *GormContentRepository) DeleteProject(id, portfolioID uint64) error {
	res := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContentRepository) ListProjects(portfolioID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("portfolio_id = ?", portfolioID).Order(displayOrder).Find(&projects).Error
	return projects, err
}

func (r *GormContentRepository) CountProjects(portfolioID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("portfolio_id = ?", portfolioID).Count(&count).Error
	return count, err
}

// Experiences

func (r *GormContentRepository) CreateExperience(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

func (r *GormContentRepository) FindExperience(id, portfolioID uint64) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).First(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *GormContentRepository) UpdateExperience(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

func (r *GormContentRepository) DeleteExperience(id, portfolioID uint64) error {
	res := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).Delete(&models.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContentRepository) ListExperiences(portfolioID uint64) ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.Where("portfolio_id = ?", portfolioID).Order(displayOrder).Find(&experiences).Error
	return experiences, err
}

func (r *GormContentRepository) CountExperiences(portfolioID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Experience{}).Where("portfolio_id = ?", portfolioID).Count(&count).Error
	return count, err
}

// Education

func (r *GormContentRepository) CreateEducation(education *models.Education) error {
	return r.db.Create(education).Error
}

func (r *GormContentRepository) FindEducation(id, portfolioID uint64) (*models.Education, error) {
	var education models.Education
	if err := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).First(&education).Error; err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *GormContentRepository) UpdateEducation(education *models.Education) error {
	return r.db.Save(education).Error
}

func (r *GormContentRepository) DeleteEducation(id, portfolioID uint64) error {
	res := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).Delete(&models.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContentRepository) ListEducation(portfolioID uint64) ([]models.Education, error) {
	var education []models.Education
	err := r.db.Where("portfolio_id = ?", portfolioID).Order(displayOrder).Find(&education).Error
	return education, err
}

func (r *GormContentRepository) CountEducation(portfolioID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Education{}).Where("portfolio_id = ?", portfolioID).Count(&count).Error
	return count, err
}

// Skills

func (r *GormContentRepository) CreateSkill(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *GormContentRepository) FindSkill(id, portfolioID uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *GormContentRepository) UpdateSkill(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *GormContentRepository) DeleteSkill(id, portfolioID uint64) error {
	res := r.db.Where("id = ? AND portfolio_id = ?", id, portfolioID).Delete(&models.Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContentRepository) ListSkills(portfolioID uint64) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("portfolio_id = ?", portfolioID).Order(displayOrder).Find(&skills).Error
	return skills, err
}

func (r *GormContentRepository) CountSkills(portfolioID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("portfolio_id = ?", portfolioID).Count(&count).Error
	return count, err
}
