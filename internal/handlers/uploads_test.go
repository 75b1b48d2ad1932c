package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog_backend/internal/service"
)

func TestServeUpload_StreamsStoredFile(t *testing.T) {
	files := &mockFileStore{}
	if _, err := files.Save(context.Background(), "abc_cover.png", strings.NewReader("png-bytes")); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	r := newTestRouter(&service.Service{}, files)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uploads/abc_cover.png", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("body: got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "image/png") {
		t.Fatalf("content type: got %q", ct)
	}
}

func TestServeUpload_UnknownFile(t *testing.T) {
	r := newTestRouter(&service.Service{}, &mockFileStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uploads/nope.png", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
