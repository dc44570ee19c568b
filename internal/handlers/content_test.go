package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/stretchr/testify/require"
)

func TestContentHandler_ProjectCRUD(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/projects", map[string]interface{}{
		"title":        "Portfolio Builder",
		"description":  "A portfolio web app.",
		"technologies": []string{"Go", "Gin"},
		"github_url":   "https://github.com/alice/portfolio",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 0, created.OrderIndex)
	require.Equal(t, []string{"Go", "Gin"}, created.TechnologiesList())

	w = s.do(http.MethodPut, fmt.Sprintf("/api/portfolio/projects/%d", created.ID), map[string]interface{}{
		"title":       "Portfolio Builder v2",
		"description": "A portfolio web app.",
		"featured":    true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Portfolio Builder v2", updated.Title)
	require.True(t, updated.Featured)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/portfolio/projects/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/portfolio/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list.Projects)
}

func TestContentHandler_CrossTenantAccessIsNotFound(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerAndLogin(t, env, "alice", "alice@example.com")
	bob := registerAndLogin(t, env, "bob", "bob@example.com")

	w := alice.do(http.MethodPost, "/api/portfolio/projects", map[string]interface{}{
		"title":       "Private project",
		"description": "Only alice can touch this.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	w = bob.do(http.MethodPut, fmt.Sprintf("/api/portfolio/projects/%d", project.ID), map[string]interface{}{
		"title":       "Hijacked",
		"description": "x",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = bob.do(http.MethodDelete, fmt.Sprintf("/api/portfolio/projects/%d", project.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Still intact
	w = alice.do(http.MethodGet, "/api/portfolio/projects", nil)
	var list struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Projects, 1)
	require.Equal(t, "Private project", list.Projects[0].Title)
}

func TestContentHandler_DeleteKeepsOrderIndexes(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	ids := make([]uint64, 0, 3)
	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/api/portfolio/projects", map[string]interface{}{
			"title":       fmt.Sprintf("Project %d", i),
			"description": "x",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var p models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		require.Equal(t, i, p.OrderIndex)
		ids = append(ids, p.ID)
	}

	w := s.do(http.MethodDelete, fmt.Sprintf("/api/portfolio/projects/%d", ids[1]), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Surviving rows keep their gapped indexes
	w = s.do(http.MethodGet, "/api/portfolio/projects", nil)
	var list struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Projects, 2)
	require.Equal(t, 0, list.Projects[0].OrderIndex)
	require.Equal(t, 2, list.Projects[1].OrderIndex)

	// The next insert lands after the survivors
	w = s.do(http.MethodPost, "/api/portfolio/projects", map[string]interface{}{
		"title":       "Project 3",
		"description": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Equal(t, 2, p.OrderIndex)
}

func TestContentHandler_ExperienceCurrentClearsEndDate(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/experiences", map[string]interface{}{
		"title":       "Backend Developer",
		"company":     "Acme",
		"start_date":  "2022-03-01",
		"end_date":    "2024-06-30",
		"current":     true,
		"description": "Building APIs.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var experience models.Experience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &experience))
	require.True(t, experience.Current)
	require.Nil(t, experience.EndDate)
}

func TestContentHandler_ExperienceInvalidDate(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/experiences", map[string]interface{}{
		"title":       "Backend Developer",
		"company":     "Acme",
		"start_date":  "03/01/2022",
		"description": "Building APIs.",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandler_EducationOptionalDescription(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/education", map[string]interface{}{
		"degree":      "MSc Computer Science",
		"institution": "Université de Lyon",
		"start_date":  "2018-09-01",
		"end_date":    "2020-06-30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var education models.Education
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &education))
	require.Equal(t, "MSc Computer Science", education.Degree)
	require.Empty(t, education.Description)
}

func TestContentHandler_SkillDefaults(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/skills", map[string]interface{}{
		"name": "Go",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var skill models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skill))
	require.Equal(t, models.SkillLevelIntermediate, skill.Level)
	require.Equal(t, models.SkillCategoryTechnical, skill.Category)
}

func TestContentHandler_SkillInvalidLevel(t *testing.T) {
	env := setupTestEnv(t)
	s := registerAndLogin(t, env, "alice", "alice@example.com")

	w := s.do(http.MethodPost, "/api/portfolio/skills", map[string]interface{}{
		"name":  "Go",
		"level": "Wizard",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
