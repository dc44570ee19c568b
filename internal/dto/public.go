package dto

import (
	"time"

	"github.com/avasseur/portfolio-builder/internal/services"
)

// Date/time fields serialize as ISO-8601 strings, or null when absent.

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func isoDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoDate(*t)
	return &s
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoTime(*t)
	return &s
}

// OwnerDTO is the owner block of the public projection.
type OwnerDTO struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ThemeDTO is the nested theme block.
type ThemeDTO struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	Layout         string `json:"layout"`
}

// PortfolioDTO is the portfolio profile block of the public projection.
type PortfolioDTO struct {
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	Linkedin     string   `json:"linkedin"`
	Github       string   `json:"github"`
	ProfileImage string   `json:"profile_image"`
	Theme        ThemeDTO `json:"theme"`
	ViewsCount   int64    `json:"views_count"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// ProjectDTO is one project entry in the public projection.
type ProjectDTO struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Images       []string `json:"images"`
	GithubURL    string   `json:"github_url"`
	DemoURL      string   `json:"demo_url"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"created_at"`
}

// ExperienceDTO is one experience entry in the public projection.
type ExperienceDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// EducationDTO is one education entry in the public projection.
type EducationDTO struct {
	ID          uint64  `json:"id"`
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// SkillDTO is one skill entry in the public projection.
type SkillDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// PublicPortfolioResponse is the full JSON API projection of a portfolio.
type PublicPortfolioResponse struct {
	User        OwnerDTO        `json:"user"`
	Portfolio   PortfolioDTO    `json:"portfolio"`
	Projects    []ProjectDTO    `json:"projects"`
	Experiences []ExperienceDTO `json:"experiences"`
	Education   []EducationDTO  `json:"education"`
	Skills      []SkillDTO      `json:"skills"`
}

// ToPublicPortfolioResponse flattens an assembled view into the JSON
// projection.
func ToPublicPortfolioResponse(view *services.PortfolioView) PublicPortfolioResponse {
	p := view.Portfolio

	resp := PublicPortfolioResponse{
		User: OwnerDTO{
			FullName: view.Owner.FullName(),
			Username: view.Owner.Username,
			Email:    view.Owner.Email,
		},
		Portfolio: PortfolioDTO{
			Bio:          p.Bio,
			Location:     p.Location,
			Phone:        p.Phone,
			Website:      p.Website,
			Linkedin:     p.Linkedin,
			Github:       p.Github,
			ProfileImage: p.ProfileImage,
			Theme: ThemeDTO{
				PrimaryColor:   p.ThemePrimaryColor,
				SecondaryColor: p.ThemeSecondaryColor,
				FontFamily:     p.ThemeFontFamily,
				Layout:         p.ThemeLayout,
			},
			ViewsCount: p.ViewsCount,
			CreatedAt:  isoTime(p.CreatedAt),
			UpdatedAt:  isoTime(p.UpdatedAt),
		},
		Projects:    make([]ProjectDTO, 0, len(view.Projects)),
		Experiences: make([]ExperienceDTO, 0, len(view.Experiences)),
		Education:   make([]EducationDTO, 0, len(view.Education)),
		Skills:      make([]SkillDTO, 0, len(view.Skills)),
	}

	for _, project := range view.Projects {
		resp.Projects = append(resp.Projects, ProjectDTO{
			ID:           project.ID,
			Title:        project.Title,
			Description:  project.Description,
			Technologies: project.TechnologiesList(),
			Images:       project.ImagesList(),
			GithubURL:    project.GithubURL,
			DemoURL:      project.DemoURL,
			Featured:     project.Featured,
			CreatedAt:    isoTime(project.CreatedAt),
		})
	}

	for _, exp := range view.Experiences {
		resp.Experiences = append(resp.Experiences, ExperienceDTO{
			ID:          exp.ID,
			Title:       exp.Title,
			Company:     exp.Company,
			Location:    exp.Location,
			StartDate:   isoDate(exp.StartDate),
			EndDate:     isoDatePtr(exp.EndDate),
			Current:     exp.Current,
			Description: exp.Description,
			CreatedAt:   isoTime(exp.CreatedAt),
		})
	}

	for _, edu := range view.Education {
		resp.Education = append(resp.Education, EducationDTO{
			ID:          edu.ID,
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Location:    edu.Location,
			StartDate:   isoDate(edu.StartDate),
			EndDate:     isoDatePtr(edu.EndDate),
			Current:     edu.Current,
			Description: edu.Description,
			CreatedAt:   isoTime(edu.CreatedAt),
		})
	}

	for _, skill := range view.Skills {
		resp.Skills = append(resp.Skills, SkillDTO{
			ID:        skill.ID,
			Name:      skill.Name,
			Level:     skill.Level,
			Category:  skill.Category,
			CreatedAt: isoTime(skill.CreatedAt),
		})
	}

	return resp
}
