package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renderer for portfolio bios
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

// Renderer turns an assembled portfolio view into an HTML document. The
// document layout is presentation detail; consumers only rely on getting a
// complete page back.
type Renderer interface {
	RenderPortfolio(view *services.PortfolioView) ([]byte, error)
	RenderEmbed(view *services.PortfolioView) ([]byte, error)
}

// HTMLRenderer renders portfolios with an embedded template and the theme
// colors stored on the portfolio. The embed variant is a stripped-down page
// meant for iframes.
type HTMLRenderer struct {
	page  *template.Template
	embed *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	page, err := template.New("portfolio").Parse(portfolioTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio template: %w", err)
	}
	embed, err := template.New("embed").Parse(embedTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embed template: %w", err)
	}
	return &HTMLRenderer{page: page, embed: embed}, nil
}

type templateData struct {
	View    *services.PortfolioView
	BioHTML template.HTML
}

func (r *HTMLRenderer) data(view *services.PortfolioView) (templateData, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(view.Portfolio.Bio), &buf); err != nil {
		return templateData{}, fmt.Errorf("failed to render bio: %w", err)
	}
	return templateData{
		View:    view,
		BioHTML: template.HTML(buf.String()),
	}, nil
}

func (r *HTMLRenderer) RenderPortfolio(view *services.PortfolioView) ([]byte, error) {
	data, err := r.data(view)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := r.page.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("failed to execute portfolio template: %w", err)
	}
	return out.Bytes(), nil
}

func (r *HTMLRenderer) RenderEmbed(view *services.PortfolioView) ([]byte, error) {
	data, err := r.data(view)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := r.embed.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("failed to execute embed template: %w", err)
	}
	return out.Bytes(), nil
}
