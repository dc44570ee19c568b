package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/avasseur/portfolio-builder/internal/dto"
	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/stretchr/testify/require"
)

func ownerWithContent(t *testing.T, env *testEnv) (owner *session, slug string) {
	t.Helper()

	owner = registerAndLogin(t, env, "alice", "alice@example.com")
	portfolio := dashboardPortfolio(t, owner)
	slug = portfolio["public_url"].(string)

	w := owner.do(http.MethodPost, "/api/portfolio/projects", map[string]interface{}{
		"title":        "Portfolio Builder",
		"description":  "A portfolio web app.",
		"technologies": []string{"Go", "Gin"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = owner.do(http.MethodPost, "/api/portfolio/experiences", map[string]interface{}{
		"title":       "Backend Developer",
		"company":     "Acme",
		"start_date":  "2022-03-01",
		"current":     true,
		"description": "Building APIs.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = owner.do(http.MethodPost, "/api/portfolio/skills", map[string]interface{}{
		"name": "Go", "level": "Expert", "category": "Technique",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = owner.do(http.MethodPost, "/api/portfolio/skills", map[string]interface{}{
		"name": "French", "level": "Avancé", "category": "Langue",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	return owner, slug
}

func viewsCount(t *testing.T, env *testEnv, slug string) int64 {
	t.Helper()
	var portfolio models.Portfolio
	require.NoError(t, env.db.Where("public_url = ?", slug).First(&portfolio).Error)
	return portfolio.ViewsCount
}

func TestPublicHandler_ViewPortfolio(t *testing.T) {
	env := setupTestEnv(t)
	_, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/"+slug, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	require.Contains(t, body, "Alice Durand")
	require.Contains(t, body, "Portfolio Builder")
	require.Contains(t, body, "Backend Developer")
	require.Contains(t, body, models.DefaultPrimaryColor)
}

func TestPublicHandler_ViewCountedOncePerSession(t *testing.T) {
	env := setupTestEnv(t)
	_, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	visitor.do(http.MethodGet, "/p/"+slug, nil)
	require.Equal(t, int64(1), viewsCount(t, env, slug))

	// Repeat views and other projection forms share the dedup marker
	visitor.do(http.MethodGet, "/p/"+slug, nil)
	visitor.do(http.MethodGet, "/p/"+slug+"/api", nil)
	visitor.do(http.MethodGet, "/p/"+slug+"/embed", nil)
	require.Equal(t, int64(1), viewsCount(t, env, slug))

	// A fresh session counts again
	other := newSession(t, env)
	other.do(http.MethodGet, "/p/"+slug, nil)
	require.Equal(t, int64(2), viewsCount(t, env, slug))
}

func TestPublicHandler_JSONProjection(t *testing.T) {
	env := setupTestEnv(t)
	_, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/"+slug+"/api", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PublicPortfolioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Equal(t, "Alice Durand", response.User.FullName)
	require.Equal(t, "alice", response.User.Username)
	require.Equal(t, models.DefaultLayout, response.Portfolio.Theme.Layout)

	require.Len(t, response.Projects, 1)
	require.Equal(t, []string{"Go", "Gin"}, response.Projects[0].Technologies)

	require.Len(t, response.Experiences, 1)
	require.Equal(t, "2022-03-01", response.Experiences[0].StartDate)
	require.Nil(t, response.Experiences[0].EndDate)
	require.True(t, response.Experiences[0].Current)

	require.Len(t, response.Skills, 2)
}

func TestPublicHandler_Embed(t *testing.T) {
	env := setupTestEnv(t)
	_, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/"+slug+"/embed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "Alice Durand")
}

func TestPublicHandler_UnknownSlug(t *testing.T) {
	env := setupTestEnv(t)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/no-such-slug", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_CVMissing(t *testing.T) {
	env := setupTestEnv(t)
	_, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/"+slug+"/cv", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_AnalyticsReflectsViews(t *testing.T) {
	env := setupTestEnv(t)
	owner, slug := ownerWithContent(t, env)

	visitor := newSession(t, env)
	visitor.do(http.MethodGet, "/p/"+slug, nil)

	w := owner.do(http.MethodGet, "/api/portfolio/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		ViewsCount int64   `json:"views_count"`
		LastViewed *string `json:"last_viewed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.ViewsCount)
	require.NotNil(t, response.LastViewed)
}
