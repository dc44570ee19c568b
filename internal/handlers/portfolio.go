package handlers

import (
	"errors"
	"net/http"

	"github.com/avasseur/portfolio-builder/internal/dto"
	apierrors "github.com/avasseur/portfolio-builder/internal/errors"
	"github.com/avasseur/portfolio-builder/internal/middleware"
	"github.com/avasseur/portfolio-builder/internal/render"
	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the owner-facing portfolio routes.
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	publicService    *services.PublicService
	authService      *services.AuthService
	renderer         render.Renderer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService *services.PortfolioService, publicService *services.PublicService, authService *services.AuthService, renderer render.Renderer) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		publicService:    publicService,
		authService:      authService,
		renderer:         renderer,
	}
}

// Dashboard returns the owner's portfolio with collection counters.
func (h *PortfolioHandler) Dashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	summary, err := h.portfolioService.Dashboard(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolio": summary.Portfolio,
		"counts": gin.H{
			"projects":    summary.Projects,
			"experiences": summary.Experiences,
			"education":   summary.Education,
			"skills":      summary.Skills,
		},
	})
}

// UpdateProfile applies a partial update to the profile fields.
func (h *PortfolioHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ProfileRequest struct {
		Bio      *string `json:"bio"`
		Location *string `json:"location"`
		Phone    *string `json:"phone"`
		Website  *string `json:"website"`
		Linkedin *string `json:"linkedin"`
		Github   *string `json:"github"`
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	portfolio, err := h.portfolioService.UpdateProfile(userID, services.ProfileInput{
		Bio:      req.Bio,
		Location: req.Location,
		Phone:    req.Phone,
		Website:  req.Website,
		Linkedin: req.Linkedin,
		Github:   req.Github,
	})
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// UploadProfileImage replaces the profile image.
func (h *PortfolioHandler) UploadProfileImage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		apierrors.BadRequest(c, "profile_image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	portfolio, err := h.portfolioService.UpdateProfileImage(userID, fileHeader.Filename, file)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// UpdateVisibility toggles public reachability.
func (h *PortfolioHandler) UpdateVisibility(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type VisibilityRequest struct {
		IsPublic *bool `json:"is_public" binding:"required"`
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	portfolio, err := h.portfolioService.SetVisibility(userID, *req.IsPublic)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// UpdateTheme replaces the four theme fields.
func (h *PortfolioHandler) UpdateTheme(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ThemeRequest struct {
		PrimaryColor   string `json:"primary_color" binding:"required"`
		SecondaryColor string `json:"secondary_color" binding:"required"`
		FontFamily     string `json:"font_family" binding:"required"`
		Layout         string `json:"layout" binding:"required"`
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	portfolio, err := h.portfolioService.UpdateTheme(userID, services.ThemeInput{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		FontFamily:     req.FontFamily,
		Layout:         req.Layout,
	})
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// UploadCV accepts a PDF upload.
func (h *PortfolioHandler) UploadCV(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	fileHeader, err := c.FormFile("cv_file")
	if err != nil {
		apierrors.BadRequest(c, "cv_file file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	portfolio, err := h.portfolioService.UploadCV(userID, fileHeader.Filename, file)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// ImportCV fetches a CV from a remote URL.
func (h *PortfolioHandler) ImportCV(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ImportRequest struct {
		CVURL  string `json:"cv_url" binding:"required"`
		CVName string `json:"cv_name"`
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	portfolio, err := h.portfolioService.ImportCV(userID, req.CVURL, req.CVName)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// Preview renders the owner's own portfolio regardless of visibility.
func (h *PortfolioHandler) Preview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	portfolio, err := h.portfolioService.GetOrCreate(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}
	owner, err := h.authService.GetUser(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	view, err := h.publicService.ViewOwn(portfolio, owner)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	page, err := h.renderer.RenderPortfolio(view)
	if err != nil {
		apierrors.InternalError(c, "Failed to render portfolio")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Analytics returns view counters plus the capped visitor log from the
// session.
func (h *PortfolioHandler) Analytics(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	portfolio, err := h.portfolioService.GetOrCreate(userID)
	if err != nil {
		respondPortfolioError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"views_count": portfolio.ViewsCount,
		"last_viewed": portfolio.LastViewed,
		"visitors":    loadVisitorLog(c),
	})
}

// Search finds public portfolios (also exposed unauthenticated).
func (h *PortfolioHandler) Search(c *gin.Context) {
	portfolios, err := h.portfolioService.SearchPublic(c.Query("q"))
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	results := make([]dto.SearchResultDTO, 0, len(portfolios))
	for _, p := range portfolios {
		results = append(results, dto.ToSearchResultDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func respondPortfolioError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequestWithDetails(c, validationErr.Message, gin.H{"field": validationErr.Field})
	case errors.Is(err, services.ErrPortfolioNotFound),
		errors.Is(err, services.ErrContentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "")
	case errors.Is(err, services.ErrCVFetchFailed):
		apierrors.BadGateway(c, "Could not fetch CV from the given URL")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
