package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"gorm.io/gorm"
)

// ErrContentNotFound covers both missing entities and entities owned by
// another portfolio; callers cannot tell the two apart.
var ErrContentNotFound = errors.New("entry not found")

const dateLayout = "2006-01-02"

// ContentService implements validated add/edit/delete over the four owned
// collections. Every lookup is scoped to the acting user's own portfolio.
type ContentService struct {
	portfolios  *PortfolioService
	contentRepo repository.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(portfolios *PortfolioService, contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{
		portfolios:  portfolios,
		contentRepo: contentRepo,
	}
}

func (s *ContentService) ownPortfolio(userID uint64) (*models.Portfolio, error) {
	return s.portfolios.GetOrCreate(userID)
}

func parseDate(field, value string, required bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return nil, NewValidationError(field, "date is required")
		}
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, NewValidationError(field, "must be a YYYY-MM-DD date")
	}
	return &t, nil
}

// Projects

// ProjectInput carries project fields for add and edit.
type ProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	Images       []string
	GithubURL    string
	DemoURL      string
	Featured     bool
}

func (in ProjectInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewValidationError("description", "description is required")
	}
	return nil
}

// AddProject appends a project to the caller's portfolio.
func (s *ContentService) AddProject(userID uint64, input ProjectInput) (*models.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	count, err := s.contentRepo.CountProjects(portfolio.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	project := &models.Project{
		PortfolioID: portfolio.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		GithubURL:   input.GithubURL,
		DemoURL:     input.DemoURL,
		Featured:    input.Featured,
		OrderIndex:  int(count),
	}
	project.SetTechnologiesList(input.Technologies)
	project.SetImagesList(input.Images)

	if err := s.contentRepo.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject edits a project owned by the caller. The order index is
// never changed here.
func (s *ContentService) UpdateProject(userID, projectID uint64, input ProjectInput) (*models.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	project, err := s.contentRepo.FindProject(projectID, portfolio.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	project.Title = strings.TrimSpace(input.Title)
	project.Description = input.Description
	project.GithubURL = input.GithubURL
	project.DemoURL = input.DemoURL
	project.Featured = input.Featured
	project.SetTechnologiesList(input.Technologies)
	project.SetImagesList(input.Images)

	if err := s.contentRepo.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project owned by the caller. Remaining siblings
// keep their order indexes.
func (s *ContentService) DeleteProject(userID, projectID uint64) error {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return err
	}

	if err := s.contentRepo.DeleteProject(projectID, portfolio.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ListProjects returns the caller's projects in display order.
func (s *ContentService) ListProjects(userID uint64) ([]models.Project, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.ListProjects(portfolio.ID)
}

// Experiences

// ExperienceInput carries experience fields for add and edit.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	Current     bool
	Description string
}

func (s *ContentService) buildExperience(dst *models.Experience, input ExperienceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Company) == "" {
		return NewValidationError("company", "company is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return NewValidationError("description", "description is required")
	}

	start, err := parseDate("start_date", input.StartDate, true)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", input.EndDate, false)
	if err != nil {
		return err
	}
	// A current position never stores an end date, whatever was submitted.
	if input.Current {
		end = nil
	}

	dst.Title = strings.TrimSpace(input.Title)
	dst.Company = strings.TrimSpace(input.Company)
	dst.Location = input.Location
	dst.StartDate = *start
	dst.EndDate = end
	dst.Current = input.Current
	dst.Description = input.Description
	return nil
}

// AddExperience appends an experience entry to the caller's portfolio.
func (s *ContentService) AddExperience(userID uint64, input ExperienceInput) (*models.Experience, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	experience := &models.Experience{PortfolioID: portfolio.ID}
	if err := s.buildExperience(experience, input); err != nil {
		return nil, err
	}

	count, err := s.contentRepo.CountExperiences(portfolio.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count experiences: %w", err)
	}
	experience.OrderIndex = int(count)

	if err := s.contentRepo.CreateExperience(experience); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return experience, nil
}

// UpdateExperience edits an experience entry owned by the caller.
func (s *ContentService) UpdateExperience(userID, experienceID uint64, input ExperienceInput) (*models.Experience, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	experience, err := s.contentRepo.FindExperience(experienceID, portfolio.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find experience: %w", err)
	}

	if err := s.buildExperience(experience, input); err != nil {
		return nil, err
	}

	if err := s.contentRepo.UpdateExperience(experience); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return experience, nil
}

// DeleteExperience removes an experience entry owned by the caller.
func (s *ContentService) DeleteExperience(userID, experienceID uint64) error {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return err
	}

	if err := s.contentRepo.DeleteExperience(experienceID, portfolio.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}

// ListExperiences returns the caller's experience entries in display order.
func (s *ContentService) ListExperiences(userID uint64) ([]models.Experience, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.ListExperiences(portfolio.ID)
}

// Education

// EducationInput carries education fields for add and edit.
type EducationInput struct {
	Degree      string
	Institution string
	Location    string
	StartDate   string
	EndDate     string
	Current     bool
	Description string
}

func (s *ContentService) buildEducation(dst *models.Education, input EducationInput) error {
	if strings.TrimSpace(input.Degree) == "" {
		return NewValidationError("degree", "degree is required")
	}
	if strings.TrimSpace(input.Institution) == "" {
		return NewValidationError("institution", "institution is required")
	}

	start, err := parseDate("start_date", input.StartDate, true)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", input.EndDate, false)
	if err != nil {
		return err
	}
	if input.Current {
		end = nil
	}

	dst.Degree = strings.TrimSpace(input.Degree)
	dst.Institution = strings.TrimSpace(input.Institution)
	dst.Location = input.Location
	dst.StartDate = *start
	dst.EndDate = end
	dst.Current = input.Current
	dst.Description = input.Description
	return nil
}

// AddEducation appends an education entry to the caller's portfolio.
func (s *ContentService) AddEducation(userID uint64, input EducationInput) (*models.Education, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	education := &models.Education{PortfolioID: portfolio.ID}
	if err := s.buildEducation(education, input); err != nil {
		return nil, err
	}

	count, err := s.contentRepo.CountEducation(portfolio.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count education: %w", err)
	}
	education.OrderIndex = int(count)

	if err := s.contentRepo.CreateEducation(education); err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return education, nil
}

// UpdateEducation edits an education entry owned by the caller.
func (s *ContentService) UpdateEducation(userID, educationID uint64, input EducationInput) (*models.Education, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	education, err := s.contentRepo.FindEducation(educationID, portfolio.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find education: %w", err)
	}

	if err := s.buildEducation(education, input); err != nil {
		return nil, err
	}

	if err := s.contentRepo.UpdateEducation(education); err != nil {
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return education, nil
}

// DeleteEducation removes an education entry owned by the caller.
func (s *ContentService) DeleteEducation(userID, educationID uint64) error {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return err
	}

	if err := s.contentRepo.DeleteEducation(educationID, portfolio.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete education: %w", err)
	}
	return nil
}

// ListEducation returns the caller's education entries in display order.
func (s *ContentService) ListEducation(userID uint64) ([]models.Education, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.ListEducation(portfolio.ID)
}

// Skills

// SkillInput carries skill fields for add and edit.
type SkillInput struct {
	Name     string
	Level    string
	Category string
}

func (in *SkillInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	if in.Level == "" {
		in.Level = models.SkillLevelIntermediate
	}
	if in.Category == "" {
		in.Category = models.SkillCategoryTechnical
	}
	if !slices.Contains(models.SkillLevels, in.Level) {
		return NewValidationError("level", "unknown skill level")
	}
	if !slices.Contains(models.SkillCategories, in.Category) {
		return NewValidationError("category", "unknown skill category")
	}
	return nil
}

// AddSkill appends a skill to the caller's portfolio.
func (s *ContentService) AddSkill(userID uint64, input SkillInput) (*models.Skill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	count, err := s.contentRepo.CountSkills(portfolio.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count skills: %w", err)
	}

	skill := &models.Skill{
		PortfolioID: portfolio.ID,
		Name:        strings.TrimSpace(input.Name),
		Level:       input.Level,
		Category:    input.Category,
		OrderIndex:  int(count),
	}

	if err := s.contentRepo.CreateSkill(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkill edits a skill owned by the caller.
func (s *ContentService) UpdateSkill(userID, skillID uint64, input SkillInput) (*models.Skill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}

	skill, err := s.contentRepo.FindSkill(skillID, portfolio.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	skill.Name = strings.TrimSpace(input.Name)
	skill.Level = input.Level
	skill.Category = input.Category

	if err := s.contentRepo.UpdateSkill(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// DeleteSkill removes a skill owned by the caller.
func (s *ContentService) DeleteSkill(userID, skillID uint64) error {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return err
	}

	if err := s.contentRepo.DeleteSkill(skillID, portfolio.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// ListSkills returns the caller's skills in display order.
func (s *ContentService) ListSkills(userID uint64) ([]models.Skill, error) {
	portfolio, err := s.ownPortfolio(userID)
	if err != nil {
		return nil, err
	}
	return s.contentRepo.ListSkills(portfolio.ID)
}
