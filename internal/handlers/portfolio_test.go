package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_.-]+-[0-9a-f]{8}$`)

func dashboardPortfolio(t *testing.T, s *session) map[string]interface{} {
	t.Helper()

	w := s.do(http.MethodGet, "/api/portfolio/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	portfolio, ok := response["portfolio"].(map[string]interface{})
	require.True(t, ok)
	return portfolio
}

func TestPortfolioHandler_DashboardProvisionsOnce(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	first := dashboardPortfolio(t, s)
	second := dashboardPortfolio(t, s)

	// Repeated access returns the same portfolio, not a new row
	require.Equal(t, first["id"], second["id"])
	require.Equal(t, first["public_url"], second["public_url"])

	var count int64
	require.NoError(t, env.db.Model(&models.Portfolio{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestPortfolioHandler_DashboardDefaults(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	portfolio := dashboardPortfolio(t, s)

	slug, ok := portfolio["public_url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(slug, "alice-"))
	require.True(t, slugPattern.MatchString(slug), "unexpected slug %q", slug)

	require.Equal(t, "Hello, I am Alice Durand.", portfolio["bio"])
	require.Equal(t, models.DefaultPrimaryColor, portfolio["theme_primary_color"])
	require.Equal(t, models.DefaultSecondaryColor, portfolio["theme_secondary_color"])
	require.Equal(t, models.DefaultFontFamily, portfolio["theme_font_family"])
	require.Equal(t, models.DefaultLayout, portfolio["theme_layout"])
	require.Equal(t, true, portfolio["is_public"])
}

func TestPortfolioHandler_UpdateProfilePartial(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPut, "/api/portfolio/profile", map[string]string{
		"location": "Paris",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var portfolio models.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &portfolio))
	require.Equal(t, "Paris", portfolio.Location)
	// Omitted fields keep their values
	require.Equal(t, "Hello, I am Alice Durand.", portfolio.Bio)

	w = s.do(http.MethodPut, "/api/portfolio/profile", map[string]string{
		"bio": "Backend developer.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &portfolio))
	require.Equal(t, "Backend developer.", portfolio.Bio)
	require.Equal(t, "Paris", portfolio.Location)
}

func TestPortfolioHandler_UpdateTheme(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPut, "/api/portfolio/theme", map[string]string{
		"primary_color":   "#FF0000",
		"secondary_color": "#00FF00",
		"font_family":     "Roboto",
		"layout":          "classic",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var portfolio models.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &portfolio))
	require.Equal(t, "#FF0000", portfolio.ThemePrimaryColor)
	require.Equal(t, "Roboto", portfolio.ThemeFontFamily)
	require.Equal(t, "classic", portfolio.ThemeLayout)
}

func TestPortfolioHandler_UpdateTheme_Invalid(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	cases := []map[string]string{
		{"primary_color": "red", "secondary_color": "#00FF00", "font_family": "Inter", "layout": "modern"},
		{"primary_color": "#FF0000", "secondary_color": "#00FF00", "font_family": "Comic Sans", "layout": "modern"},
		{"primary_color": "#FF0000", "secondary_color": "#00FF00", "font_family": "Inter", "layout": "fancy"},
	}
	for _, payload := range cases {
		w := s.do(http.MethodPut, "/api/portfolio/theme", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestPortfolioHandler_Visibility(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	portfolio := dashboardPortfolio(t, s)
	slug := portfolio["public_url"].(string)

	visitor := newSession(t, env)
	w := visitor.do(http.MethodGet, "/p/"+slug, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPut, "/api/portfolio/visibility", map[string]bool{
		"is_public": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A private portfolio is indistinguishable from a missing one
	w = visitor.do(http.MethodGet, "/p/"+slug, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	private := w.Body.String()

	w = visitor.do(http.MethodGet, "/p/no-such-slug", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, w.Body.String(), private)
}

func TestPortfolioHandler_PreviewWorksWhilePrivate(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPut, "/api/portfolio/visibility", map[string]bool{
		"is_public": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/portfolio/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "Alice Durand")
}

func TestPortfolioHandler_Search(t *testing.T) {
	env := setupTestEnv(t)
	registerAndLogin(t, env, "alice", "alice@example.com")
	bob := registerAndLogin(t, env, "bob", "bob@example.com")
	dashboardPortfolio(t, bob)

	// Provision alice's portfolio, then hide it
	alice := registerAndLogin(t, env, "alicia", "alicia@example.com")
	dashboardPortfolio(t, alice)
	w := alice.do(http.MethodPut, "/api/portfolio/visibility", map[string]bool{
		"is_public": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	visitor := newSession(t, env)
	w = visitor.do(http.MethodGet, "/api/search?q=bob", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Results []map[string]interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Results, 1)
	require.Equal(t, "bob", response.Results[0]["username"])

	// Private portfolios never match
	w = visitor.do(http.MethodGet, "/api/search?q=alicia", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Results)

	// Empty query returns an empty list
	w = visitor.do(http.MethodGet, "/api/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Results)
}
