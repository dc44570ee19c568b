package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasseur/portfolio-builder/internal/constants"
	"github.com/avasseur/portfolio-builder/internal/database"
	"github.com/avasseur/portfolio-builder/internal/middleware"
	"github.com/avasseur/portfolio-builder/internal/models"
	"github.com/avasseur/portfolio-builder/internal/render"
	"github.com/avasseur/portfolio-builder/internal/repository"
	"github.com/avasseur/portfolio-builder/internal/services"
	"github.com/avasseur/portfolio-builder/internal/uploads"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeMailer records outbound mail instead of delivering it.
type fakeMailer struct {
	verificationTokens map[string]string
	resetTokens        map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		verificationTokens: make(map[string]string),
		resetTokens:        make(map[string]string),
	}
}

func (m *fakeMailer) SendVerificationEmail(to, fullName, token string) error {
	m.verificationTokens[to] = token
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(to, fullName, token string) error {
	m.resetTokens[to] = token
	return nil
}

type testEnv struct {
	db               *gorm.DB
	router           *gin.Engine
	mailer           *fakeMailer
	authService      *services.AuthService
	portfolioService *services.PortfolioService
	contentService   *services.ContentService
	publicService    *services.PublicService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Portfolio{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Skill{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	mailer := newFakeMailer()
	uploadStore := uploads.NewStore(t.TempDir())
	renderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	contentRepo := repository.NewContentRepository(db)

	authService := services.NewAuthService(userRepo, mailer)
	portfolioService := services.NewPortfolioService(userRepo, portfolioRepo, contentRepo, uploadStore)
	contentService := services.NewContentService(portfolioService, contentRepo)
	publicService := services.NewPublicService(portfolioRepo, contentRepo, uploadStore)

	authHandler := NewAuthHandler(authService)
	portfolioHandler := NewPortfolioHandler(portfolioService, publicService, authService, renderer)
	contentHandler := NewContentHandler(contentService)
	publicHandler := NewPublicHandler(publicService, renderer)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	api := r.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	auth.GET("/verify/:token", authHandler.VerifyEmail)
	auth.POST("/reset-password", authHandler.RequestPasswordReset)
	auth.POST("/reset-password/:token", authHandler.ResetPassword)

	portfolio := api.Group("/portfolio")
	portfolio.Use(middleware.RequireAuth())
	portfolio.GET("/dashboard", portfolioHandler.Dashboard)
	portfolio.PUT("/profile", portfolioHandler.UpdateProfile)
	portfolio.POST("/profile/image", portfolioHandler.UploadProfileImage)
	portfolio.PUT("/visibility", portfolioHandler.UpdateVisibility)
	portfolio.PUT("/theme", portfolioHandler.UpdateTheme)
	portfolio.POST("/cv", portfolioHandler.UploadCV)
	portfolio.POST("/cv/import", portfolioHandler.ImportCV)
	portfolio.GET("/preview", portfolioHandler.Preview)
	portfolio.GET("/analytics", portfolioHandler.Analytics)
	portfolio.GET("/projects", contentHandler.ListProjects)
	portfolio.POST("/projects", contentHandler.AddProject)
	portfolio.PUT("/projects/:id", contentHandler.UpdateProject)
	portfolio.DELETE("/projects/:id", contentHandler.DeleteProject)
	portfolio.GET("/experiences", contentHandler.ListExperiences)
	portfolio.POST("/experiences", contentHandler.AddExperience)
	portfolio.PUT("/experiences/:id", contentHandler.UpdateExperience)
	portfolio.DELETE("/experiences/:id", contentHandler.DeleteExperience)
	portfolio.GET("/education", contentHandler.ListEducation)
	portfolio.POST("/education", contentHandler.AddEducation)
	portfolio.PUT("/education/:id", contentHandler.UpdateEducation)
	portfolio.DELETE("/education/:id", contentHandler.DeleteEducation)
	portfolio.GET("/skills", contentHandler.ListSkills)
	portfolio.POST("/skills", contentHandler.AddSkill)
	portfolio.PUT("/skills/:id", contentHandler.UpdateSkill)
	portfolio.DELETE("/skills/:id", contentHandler.DeleteSkill)

	api.GET("/search", portfolioHandler.Search)

	r.GET("/p/:slug", publicHandler.ViewPortfolio)
	r.GET("/p/:slug/api", publicHandler.ViewPortfolioJSON)
	r.GET("/p/:slug/embed", publicHandler.ViewPortfolioEmbed)
	r.GET("/p/:slug/cv", publicHandler.DownloadCV)

	return &testEnv{
		db:               db,
		router:           r,
		mailer:           mailer,
		authService:      authService,
		portfolioService: portfolioService,
		contentService:   contentService,
		publicService:    publicService,
	}
}

// session carries cookies between requests like a browser would.
type session struct {
	t       *testing.T
	env     *testEnv
	cookies []*http.Cookie
}

func newSession(t *testing.T, env *testEnv) *session {
	return &session{t: t, env: env}
}

func (s *session) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(s.t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		s.cookies = set
	}
	return w
}

func (s *session) doUpload(path, field, filename string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(s.t, err)
	_, err = part.Write(content)
	require.NoError(s.t, err)
	require.NoError(s.t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		s.cookies = set
	}
	return w
}

func registerAndLogin(t *testing.T, env *testEnv, username, email string) *session {
	t.Helper()

	s := newSession(t, env)
	w := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username":   username,
		"email":      email,
		"first_name": "Alice",
		"last_name":  "Durand",
		"password":   "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	return s
}
