package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "github.com/lvroom/living-room-api/migrations"

	"github.com/lvroom/living-room-api/internal/auth"
	"github.com/lvroom/living-room-api/internal/catalog"
	"github.com/lvroom/living-room-api/internal/infrastructure/config"
	"github.com/lvroom/living-room-api/internal/infrastructure/database"
	"github.com/lvroom/living-room-api/internal/infrastructure/logging"
)

const testSecret = "test-secret-at-least-32-characters-long"

// testServer builds a fully wired server over a temporary database with
// migrations and seed data applied. The returned handler is the complete
// router including middleware.
func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	ctx := context.Background()

	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "api-test.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	logger := logging.New(config.LoggingConfig{
		Level:  "error",
		Format: "text",
		Output: "stderr",
	}, "test")

	users := auth.NewUserRepository(db.DB)
	if err := auth.SeedAdmin(ctx, users, logger.Logger); err != nil {
		t.Fatalf("seeding admin: %v", err)
	}

	cat := catalog.New(db.DB)
	if err := catalog.Seed(ctx, cat, logger.Logger); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	s, err := New(Deps{
		Config: config.APIConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Security: config.SecurityConfig{
			JWT:            config.JWTConfig{Secret: testSecret},
			PasswordScheme: config.PasswordSchemeLegacy,
		},
		Logger:  logger,
		Catalog: cat,
		Users:   users,
		DB:      db,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	return s, s.buildRouter()
}

// doJSON performs a request against the handler with an optional bearer
// token and JSON body.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshalling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// adminToken authenticates as the seed administrator and returns a token.
func adminToken(t *testing.T, h http.Handler) string {
	t.Helper()

	rr := doJSON(t, h, http.MethodPost, "/api/v1/users/authenticate", "", map[string]string{
		"id":       auth.AdminUserID,
		"password": "admin123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("authenticating admin: status %d, body %s", rr.Code, rr.Body.String())
	}

	var resp authenticateResponse
	decodeBody(t, rr, &resp)
	return resp.AccessToken
}

// decodeBody unmarshals a recorded JSON response body into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
}
