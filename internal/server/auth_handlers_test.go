package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillbridge/internal/config"
	"skillbridge/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSignup(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}
	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Test Student",
				"email":    "test@example.com",
				"password": "password123",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"name":     "Test Student",
				"email":    "exists@example.com",
				"password": "password123",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"name":     "Test Student",
				"email":    "not-an-email",
				"password": "password123",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Short Password",
			body: map[string]string{
				"name":     "Test Student",
				"email":    "test2@example.com",
				"password": "short",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Role",
			body: map[string]string{
				"name":     "Test Student",
				"email":    "test3@example.com",
				"password": "password123",
				"role":     "superuser",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp := postJSON(t, app, "/signup", tt.body)
			body := decodeBody(t, resp)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.name == "Duplicate Email" {
				assert.Equal(t, "User already exists with this email", body["message"])
			}
			if tt.expectedStatus == http.StatusCreated {
				data := body["data"].(map[string]any)
				assert.NotEmpty(t, data["token"])
				user := data["user"].(map[string]any)
				assert.Equal(t, "student", user["role"])
				// Password hash must never leave the server.
				_, leaked := user["password"]
				assert.False(t, leaked)
			}
		})
	}
}

func TestLogin_MessageParity(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}
	app.Post("/login", s.Login)

	mockRepo.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&models.User{ID: 1, Email: "known@example.com", Password: string(hashed)}, nil)
	mockRepo.On("GetByEmail", mock.Anything, "unknown@example.com").Return(nil, nil)

	wrongPassword := postJSON(t, app, "/login", map[string]string{
		"email":    "known@example.com",
		"password": "wrongpassword",
	})
	unknownEmail := postJSON(t, app, "/login", map[string]string{
		"email":    "unknown@example.com",
		"password": "password123",
	})

	wrongBody := decodeBody(t, wrongPassword)
	unknownBody := decodeBody(t, unknownEmail)

	// Both failures are indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	assert.Equal(t, "Invalid email or password", wrongBody["message"])
	assert.Equal(t, wrongBody["message"], unknownBody["message"])
}

func TestLogin_Success(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}
	app.Post("/login", s.Login)

	mockRepo.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&models.User{ID: 1, Email: "known@example.com", Password: string(hashed)}, nil)

	resp := postJSON(t, app, "/login", map[string]string{
		"email":    "known@example.com",
		"password": "password123",
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
}
