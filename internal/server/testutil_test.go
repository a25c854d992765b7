package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillbridge/internal/config"
	"skillbridge/internal/database"
	"skillbridge/internal/models"
	"skillbridge/internal/repository"
	"skillbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a full Server against an in-memory sqlite database with
// all real routes and auth middleware.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	s := &Server{
		config:          &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:              db,
		userRepo:        userRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
	}
	s.internshipService = service.NewInternshipService(internshipRepo)
	s.applicationService = service.NewApplicationService(applicationRepo, internshipRepo, userRepo)
	s.profileService = service.NewProfileService(profileRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func tokenFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return token
}

func createListing(t *testing.T, db *gorm.DB, creator *models.User, override func(*models.Internship)) *models.Internship {
	t.Helper()
	internship := &models.Internship{
		Title:               "Backend Developer Intern",
		Company:             "Acme Corp",
		Description:         "Build and ship APIs",
		Skills:              []string{"Go", "PostgreSQL"},
		Country:             "India",
		Duration:            "6 months",
		Stipend:             "$1000/month",
		ApplicationDeadline: time.Now().AddDate(0, 3, 0),
		IsActive:            true,
		CreatedByID:         creator.ID,
	}
	if override != nil {
		override(internship)
	}
	require.NoError(t, db.Create(internship).Error)
	return internship
}

// doJSON issues a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
