package storage

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sauravks/leetdash/internal/models"
)

func TestHTTPStore_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"version": 1,
			"problems": [{"slug": "two-sum", "title": "Two Sum", "difficulty": "Easy", "status": "solved"}]
		}`))
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	doc := store.Document()
	if len(doc.Problems) != 1 || doc.Problems[0].Slug != "two-sum" {
		t.Errorf("loaded document = %+v", doc)
	}
}

func TestHTTPStore_LoadNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if err := NewHTTPStore(srv.URL).Load(); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestHTTPStore_ReadOnly(t *testing.T) {
	store := NewHTTPStore("https://example.com/state.json")
	if err := store.Init(); err == nil {
		t.Error("Init must fail for a remote document")
	}
	if err := store.SaveDocument(models.Document{}); err == nil {
		t.Error("SaveDocument must fail for a remote document")
	}
}
