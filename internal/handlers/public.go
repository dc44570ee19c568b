package handlers

import (
	"log"
	"net/http"

	"github.com/avasseur/portfolio-builder/internal/dto"
	apierrors "github.com/avasseur/portfolio-builder/internal/errors"
	"github.com/avasseur/portfolio-builder/internal/render"
	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the visitor-facing routes: the HTML page, the JSON
// projection, the embeddable view and the CV download. Every route counts
// the view at most once per visiting session.
type PublicHandler struct {
	publicService *services.PublicService
	renderer      render.Renderer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(publicService *services.PublicService, renderer render.Renderer) *PublicHandler {
	return &PublicHandler{
		publicService: publicService,
		renderer:      renderer,
	}
}

// sessionMarkers backs services.ViewMarkers with the visitor's cookie
// session.
type sessionMarkers struct {
	session sessions.Session
}

func (m sessionMarkers) Seen(key string) bool {
	seen, ok := m.session.Get(key).(bool)
	return ok && seen
}

func (m sessionMarkers) MarkSeen(key string) {
	m.session.Set(key, true)
	if err := m.session.Save(); err != nil {
		log.Printf("Failed to save view marker: %v", err)
	}
}

func (h *PublicHandler) countView(c *gin.Context, view *services.PortfolioView) {
	markers := sessionMarkers{session: sessions.Default(c)}
	if h.publicService.CountView(view.Portfolio, markers) {
		appendVisitorLog(c)
	}
}

// ViewPortfolio renders the public HTML page for a slug.
func (h *PublicHandler) ViewPortfolio(c *gin.Context) {
	view, err := h.publicService.View(c.Param("slug"))
	if err != nil {
		respondPublicError(c, err)
		return
	}

	h.countView(c, view)

	page, err := h.renderer.RenderPortfolio(view)
	if err != nil {
		apierrors.InternalError(c, "Failed to render portfolio")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// ViewPortfolioJSON serves the JSON projection of a public portfolio.
func (h *PublicHandler) ViewPortfolioJSON(c *gin.Context) {
	view, err := h.publicService.View(c.Param("slug"))
	if err != nil {
		respondPublicError(c, err)
		return
	}

	h.countView(c, view)

	c.JSON(http.StatusOK, dto.ToPublicPortfolioResponse(view))
}

// ViewPortfolioEmbed renders the iframe-friendly page for a slug.
func (h *PublicHandler) ViewPortfolioEmbed(c *gin.Context) {
	view, err := h.publicService.View(c.Param("slug"))
	if err != nil {
		respondPublicError(c, err)
		return
	}

	h.countView(c, view)

	page, err := h.renderer.RenderEmbed(view)
	if err != nil {
		apierrors.InternalError(c, "Failed to render portfolio")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// DownloadCV streams the portfolio owner's CV as an attachment.
func (h *PublicHandler) DownloadCV(c *gin.Context) {
	download, err := h.publicService.ResolveCV(c.Param("slug"))
	if err != nil {
		respondPublicError(c, err)
		return
	}
	defer download.File.Close()

	c.FileAttachment(download.File.Name(), download.DownloadName)
}

func respondPublicError(c *gin.Context, err error) {
	switch err {
	case services.ErrPortfolioNotFound:
		apierrors.NotFound(c, "Portfolio not found")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
