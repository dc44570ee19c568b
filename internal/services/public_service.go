package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"github.com/avasseur/portfolio-builder/internal/uploads"
	"gorm.io/gorm"
)

// ViewMarkers abstracts the visiting session's dedup markers. Handlers back
// it with the cookie session; the service never touches ambient state.
type ViewMarkers interface {
	Seen(key string) bool
	MarkSeen(key string)
}

// SkillGroup holds the skills of one category, in display order. Groups
// appear in first-seen order of the fetched skills, not alphabetically.
type SkillGroup struct {
	Category string
	Skills   []models.Skill
}

// PortfolioView is the assembled read-only projection of a public portfolio.
type PortfolioView struct {
	Portfolio   *models.Portfolio
	Owner       *models.User
	Projects    []models.Project
	Experiences []models.Experience
	Education   []models.Education
	Skills      []models.Skill
	SkillGroups []SkillGroup
}

// PublicService resolves public slugs, deduplicates view counting per
// visiting session and assembles the projection.
type PublicService struct {
	portfolioRepo repository.PortfolioRepository
	contentRepo   repository.ContentRepository
	store         *uploads.Store
}

// NewPublicService creates a new PublicService.
func NewPublicService(portfolioRepo repository.PortfolioRepository, contentRepo repository.ContentRepository, store *uploads.Store) *PublicService {
	return &PublicService{
		portfolioRepo: portfolioRepo,
		contentRepo:   contentRepo,
		store:         store,
	}
}

// ResolvePublic finds a public portfolio by slug. Private and nonexistent
// slugs both come back as ErrPortfolioNotFound.
func (s *PublicService) ResolvePublic(slug string) (*models.Portfolio, error) {
	portfolio, err := s.portfolioRepo.FindPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to resolve portfolio: %w", err)
	}
	return portfolio, nil
}

// CountView increments the view counter unless this visiting session has
// already viewed the portfolio through any projection form. Returns whether
// the view was counted. Counting is best-effort: a failed increment is
// logged, not surfaced.
func (s *PublicService) CountView(portfolio *models.Portfolio, markers ViewMarkers) bool {
	key := fmt.Sprintf("viewed_%d", portfolio.ID)
	if markers.Seen(key) {
		return false
	}

	now := time.Now().UTC()
	if err := s.portfolioRepo.IncrementViews(portfolio.ID, now); err != nil {
		log.Printf("Failed to increment views for portfolio %d: %v", portfolio.ID, err)
		return false
	}
	markers.MarkSeen(key)

	portfolio.ViewsCount++
	portfolio.LastViewed = &now
	return true
}

// View assembles the full projection for a public portfolio slug.
func (s *PublicService) View(slug string) (*PortfolioView, error) {
	portfolio, err := s.ResolvePublic(slug)
	if err != nil {
		return nil, err
	}
	return s.assemble(portfolio)
}

// ViewOwn assembles the projection of the caller's own portfolio regardless
// of visibility (owner preview).
func (s *PublicService) ViewOwn(portfolio *models.Portfolio, owner *models.User) (*PortfolioView, error) {
	p := *portfolio
	p.User = *owner
	return s.assemble(&p)
}

func (s *PublicService) assemble(portfolio *models.Portfolio) (*PortfolioView, error) {
	view := &PortfolioView{
		Portfolio: portfolio,
		Owner:     &portfolio.User,
	}

	var err error
	if view.Projects, err = s.contentRepo.ListProjects(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if view.Experiences, err = s.contentRepo.ListExperiences(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	if view.Education, err = s.contentRepo.ListEducation(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	if view.Skills, err = s.contentRepo.ListSkills(portfolio.ID); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	view.SkillGroups = groupSkills(view.Skills)
	return view, nil
}

func groupSkills(skills []models.Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}

// CVDownload is a resolved CV ready for streaming.
type CVDownload struct {
	File         *os.File
	DownloadName string
}

// ResolveCV locates the CV of a public portfolio. A portfolio without a
// recorded CV, or whose backing file is gone, yields ErrPortfolioNotFound.
func (s *PublicService) ResolveCV(slug string) (*CVDownload, error) {
	portfolio, err := s.ResolvePublic(slug)
	if err != nil {
		return nil, err
	}

	if portfolio.CVFilename == "" {
		return nil, ErrPortfolioNotFound
	}

	file, err := s.store.OpenCV(portfolio.CVFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to open CV: %w", err)
	}

	name := fmt.Sprintf("CV_%s.pdf", strings.ReplaceAll(portfolio.User.FullName(), " ", "_"))
	return &CVDownload{File: file, DownloadName: name}, nil
}
