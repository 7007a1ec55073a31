package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
)

func TestCoachRoutes(t *testing.T) {
	env := newAPITestEnv(t, Upstreams{
		Fruits: stubFruitLookup{fruits: map[string]models.Fruit{
			"banana": {Name: "Banana", Family: "Musaceae", Nutritions: models.Nutritions{Sugar: 17.2}},
		}},
		Images: stubImageSource{url: "https://images.example/1000"},
	})
	env.seedPatient(t, "1", models.SexFemale, 10)
	env.register(t, "1", "Ada", "pw")
	cookie := env.login(t, "1", "pw")

	response, fruit := env.do(t, http.MethodGet, "/api/fruits/Banana", nil, cookie)
	if response.StatusCode != http.StatusOK || fruit["family"] != "Musaceae" {
		t.Fatalf("unexpected fruit response %d %v", response.StatusCode, fruit)
	}

	response, missing := env.do(t, http.MethodGet, "/api/fruits/durian", nil, cookie)
	if response.StatusCode != http.StatusBadGateway || missing["error"] != "Fruit Not Found. Please give a valid fruit name." {
		t.Fatalf("unexpected missing fruit response %d %v", response.StatusCode, missing)
	}

	response, image := env.do(t, http.MethodGet, "/api/images/random", nil, cookie)
	if response.StatusCode != http.StatusOK || image["url"] != "https://images.example/1000" {
		t.Fatalf("unexpected image response %d %v", response.StatusCode, image)
	}
}

func TestUpstreamRoutesUnavailableWhenNotConfigured(t *testing.T) {
	env := newAPITestEnv(t, Upstreams{})
	env.seedPatient(t, "1", models.SexFemale, 10)
	env.register(t, "1", "Ada", "pw")
	cookie := env.login(t, "1", "pw")

	for _, request := range []struct {
		method string
		path   string
		want   string
	}{
		{method: http.MethodGet, path: "/api/fruits/banana", want: "fruit lookup is not configured"},
		{method: http.MethodGet, path: "/api/images/random", want: "image service is not configured"},
		{method: http.MethodPost, path: "/api/tips/generate", want: "tip generation is not configured"},
	} {
		response, body := env.do(t, request.method, request.path, nil, cookie)
		if response.StatusCode != http.StatusServiceUnavailable || body["error"] != request.want {
			t.Fatalf("%s %s: expected 503 %q, got %d %v", request.method, request.path, request.want, response.StatusCode, body)
		}
	}

	response, body := env.do(t, http.MethodGet, "/api/tips", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected tips to stay readable, got %d %v", response.StatusCode, body)
	}
	if tips, _ := body["tips"].([]any); len(tips) != 0 {
		t.Fatalf("expected no tips stored, got %v", body["tips"])
	}
}

func TestGenerateTipFailureMapsToBadGateway(t *testing.T) {
	env := newAPITestEnv(t, Upstreams{Generator: &stubTextGenerator{err: errors.New("quota exceeded")}})
	env.seedPatient(t, "1", models.SexFemale, 10)
	env.register(t, "1", "Ada", "pw")
	cookie := env.login(t, "1", "pw")

	response, body := env.do(t, http.MethodPost, "/api/tips/generate", nil, cookie)
	if response.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", response.StatusCode)
	}
	if body["error"] != "Could not generate a response right now. Please try again." {
		t.Fatalf("unexpected error %v", body["error"])
	}

	_, tips := env.do(t, http.MethodGet, "/api/tips", nil, cookie)
	if list, _ := tips["tips"].([]any); len(list) != 0 {
		t.Fatalf("expected no tip stored after failure, got %v", tips)
	}
}
