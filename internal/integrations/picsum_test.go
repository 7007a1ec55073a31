package integrations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRandomImageURLFollowsRedirect(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/1000", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/id/42/1000/1000.jpg", http.StatusFound)
	})
	mux.HandleFunc("/id/42/1000/1000.jpg", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewPicsumClient(server.URL, time.Second)
	url, err := client.RandomImageURL(context.Background())
	if err != nil {
		t.Fatalf("RandomImageURL() unexpected error: %v", err)
	}
	if !strings.HasSuffix(url, "/id/42/1000/1000.jpg") {
		t.Fatalf("expected redirected URL, got %q", url)
	}
}

func TestRandomImageURLStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	if _, err := NewPicsumClient(server.URL, time.Second).RandomImageURL(context.Background()); err == nil {
		t.Fatal("expected error for 503")
	}
}
