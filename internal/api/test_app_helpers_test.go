package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/security"
	"gorm.io/gorm"
)

const (
	testSecretKey     = "0123456789abcdef0123456789abcdef"
	testAdminPassword = "dollar-sign"
)

type stubTextGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (generator *stubTextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	generator.mu.Lock()
	defer generator.mu.Unlock()
	generator.prompts = append(generator.prompts, prompt)
	return generator.text, generator.err
}

type stubFruitLookup struct {
	fruits map[string]models.Fruit
}

func (lookup stubFruitLookup) FruitByName(_ context.Context, name string) (models.Fruit, bool, error) {
	fruit, ok := lookup.fruits[name]
	return fruit, ok, nil
}

type stubImageSource struct {
	url string
}

func (source stubImageSource) RandomImageURL(context.Context) (string, error) {
	return source.url, nil
}

type apiTestEnv struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
}

func newAPITestEnv(t *testing.T, upstreams Upstreams) *apiTestEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "nutritrack-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	adminSecret, err := security.SealSecret(testAdminPassword)
	if err != nil {
		t.Fatalf("seal admin password: %v", err)
	}
	handler, err := NewHandler(database, HandlerOptions{
		SecretKey:   testSecretKey,
		AdminSecret: adminSecret,
		Location:    time.UTC,
		Upstreams:   upstreams,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &apiTestEnv{app: app, handler: handler, database: database}
}

func (env *apiTestEnv) seedPatient(t *testing.T, userID string, sex string, total float64) {
	t.Helper()

	patient := models.Patient{
		UserID:      userID,
		PhoneNumber: "0400" + userID,
		Sex:         sex,
		TotalScore:  total,
		ComponentScores: models.ComponentScores{
			Vegetables: 5,
			Fruits:     7.5,
		},
		FruitServeSize:      2,
		FruitVariationScore: 5,
	}
	if err := db.NewPatientRepository(env.database).Insert(&patient); err != nil {
		t.Fatalf("insert patient %s: %v", userID, err)
	}
}

// do sends a JSON request and decodes the JSON response body into a map.
func (env *apiTestEnv) do(t *testing.T, method string, path string, payload any, cookies string) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if cookies != "" {
		request.Header.Set("Cookie", cookies)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	decoded := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 && strings.HasPrefix(response.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}
	return response, decoded
}

func (env *apiTestEnv) register(t *testing.T, userID string, name string, password string) {
	t.Helper()

	response, body := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"user_id":          userID,
		"phone_number":     "0400" + userID,
		"name":             name,
		"password":         password,
		"confirm_password": password,
	}, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%v)", userID, response.StatusCode, body)
	}
}

// login returns a Cookie header value carrying the auth cookie.
func (env *apiTestEnv) login(t *testing.T, userID string, password string) string {
	t.Helper()

	response, body := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"user_id":  userID,
		"password": password,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%v)", userID, response.StatusCode, body)
	}
	value := responseCookieValue(response.Cookies(), authCookieName)
	if value == "" {
		t.Fatal("expected auth cookie in login response")
	}
	return authCookieName + "=" + value
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func stringSet(values any) map[string]bool {
	set := map[string]bool{}
	items, _ := values.([]any)
	for _, item := range items {
		if text, ok := item.(string); ok {
			set[text] = true
		}
	}
	return set
}
