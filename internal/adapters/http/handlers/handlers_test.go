package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendly-api/internal/adapters/http/routes"
	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/config"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/pkg/jwt"
	"attendly-api/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
)

// envelope mirrors the response package's JSON shape
type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Data    map[string]interface{} `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *kvstore.Store, *config.Config) {
	t.Helper()

	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "handler-secret", AccessTokenMins: 15},
	}

	app := fiber.New()
	routes.Setup(app, store, cfg)
	return app, store, cfg
}

func seedAdmin(t *testing.T, store *kvstore.Store) {
	t.Helper()

	hash, err := password.Hash("admin123")
	if err != nil {
		t.Fatalf("failed to hash seed password: %v", err)
	}
	repo := repositories.NewCredentialRepository(store)
	err = repo.SaveAll(context.Background(), []models.Credential{
		{UserID: "1", Username: "admin", PasswordHash: hash, FullName: "Admin User", Role: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("failed to seed directory: %v", err)
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, token string) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest("POST", path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env
}

func employeeToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken("2", "employee1", "John Smith", domain.RoleEmployee, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	return token
}

func TestLoginValidationAndMapping(t *testing.T) {
	app, store, _ := newTestApp(t)
	seedAdmin(t, store)
	sessions := repositories.NewSessionRepository(store)

	t.Run("empty username is a validation error", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/auth/login", fiber.Map{"username": "", "password": "admin123"}, "")
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
		}
		if env.Error != "Username is required" {
			t.Errorf("error = %q, want %q", env.Error, "Username is required")
		}
	})

	t.Run("empty password is a validation error", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/auth/login", fiber.Map{"username": "admin", "password": ""}, "")
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
		}
		if env.Error != "Password is required" {
			t.Errorf("error = %q, want %q", env.Error, "Password is required")
		}
	})

	t.Run("wrong password maps to 401 and persists no session", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/auth/login", fiber.Map{"username": "admin", "password": "wrong"}, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
		}
		if env.Error != "Invalid username or password" {
			t.Errorf("error = %q, want %q", env.Error, "Invalid username or password")
		}

		current, err := sessions.Current(context.Background())
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if current != nil {
			t.Errorf("session = %+v, want none after failed login", current)
		}
	})

	t.Run("valid credentials answer with identity and token", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/auth/login", fiber.Map{"username": "admin", "password": "admin123"}, "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
		}
		if !env.Success {
			t.Error("success = false, want true")
		}
		if env.Data["role"] != domain.RoleAdmin {
			t.Errorf("role = %v, want %q", env.Data["role"], domain.RoleAdmin)
		}
		if env.Data["access_token"] == "" || env.Data["access_token"] == nil {
			t.Error("expected an access token in the response")
		}
	})
}

func TestCheckInCheckOutStatusMapping(t *testing.T) {
	app, _, cfg := newTestApp(t)
	token := employeeToken(t, cfg)

	t.Run("check-out with no record maps to 404", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/attendance/check-out", nil, token)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
		}
		if env.Error != "No active check-in found for today" {
			t.Errorf("error = %q, want %q", env.Error, "No active check-in found for today")
		}
	})

	t.Run("check-in succeeds once", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/attendance/check-in", nil, token)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
		}
		if !env.Success {
			t.Error("success = false, want true")
		}
	})

	t.Run("second check-in maps to 409", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/attendance/check-in", nil, token)
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusConflict)
		}
		if env.Error != "You have already checked in today" {
			t.Errorf("error = %q, want %q", env.Error, "You have already checked in today")
		}
	})

	t.Run("check-out closes the day", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/attendance/check-out", nil, token)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
		}
		if !env.Success {
			t.Error("success = false, want true")
		}
	})

	t.Run("second check-out maps to 409", func(t *testing.T) {
		resp, env := postJSON(t, app, "/api/v1/attendance/check-out", nil, token)
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusConflict)
		}
		if env.Error != "You have already checked out today" {
			t.Errorf("error = %q, want %q", env.Error, "You have already checked out today")
		}
	})

	t.Run("records stay admin-only", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/attendance/records", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
		}
	})
}
