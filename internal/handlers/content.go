package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/avasseur/portfolio-builder/internal/errors"
	"github.com/avasseur/portfolio-builder/internal/middleware"
	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the owner-facing CRUD routes for the four owned
// collections.
type ContentHandler struct {
	contentService *services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func entityID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// Projects

type projectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies"`
	Images       []string `json:"images"`
	GithubURL    string   `json:"github_url"`
	DemoURL      string   `json:"demo_url"`
	Featured     bool     `json:"featured"`
}

func (r projectRequest) input() services.ProjectInput {
	return services.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		Images:       r.Images,
		GithubURL:    r.GithubURL,
		DemoURL:      r.DemoURL,
		Featured:     r.Featured,
	}
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.contentService.ListProjects(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ContentHandler) AddProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.contentService.AddProject(userID, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.contentService.UpdateProject(userID, id, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteProject(userID, id); err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// Experiences

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description" binding:"required"`
}

func (r experienceRequest) input() services.ExperienceInput {
	return services.ExperienceInput{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Description: r.Description,
	}
}

func (h *ContentHandler) ListExperiences(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	experiences, err := h.contentService.ListExperiences(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}

func (h *ContentHandler) AddExperience(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	experience, err := h.contentService.AddExperience(userID, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *ContentHandler) UpdateExperience(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	experience, err := h.contentService.UpdateExperience(userID, id, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ContentHandler) DeleteExperience(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteExperience(userID, id); err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted"})
}

// Education

type educationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r educationRequest) input() services.EducationInput {
	return services.EducationInput{
		Degree:      r.Degree,
		Institution: r.Institution,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Description: r.Description,
	}
}

func (h *ContentHandler) ListEducation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	education, err := h.contentService.ListEducation(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"education": education})
}

func (h *ContentHandler) AddEducation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	education, err := h.contentService.AddEducation(userID, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusCreated, education)
}

func (h *ContentHandler) UpdateEducation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	education, err := h.contentService.UpdateEducation(userID, id, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, education)
}

func (h *ContentHandler) DeleteEducation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteEducation(userID, id); err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education entry deleted"})
}

// Skills

type skillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

func (r skillRequest) input() services.SkillInput {
	return services.SkillInput{
		Name:     r.Name,
		Level:    r.Level,
		Category: r.Category,
	}
}

func (h *ContentHandler) ListSkills(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	skills, err := h.contentService.ListSkills(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func (h *ContentHandler) AddSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.contentService.AddSkill(userID, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *ContentHandler) UpdateSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.contentService.UpdateSkill(userID, id, req.input())
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *ContentHandler) DeleteSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := entityID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteSkill(userID, id); err != nil {
		respondPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
