package retriever

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookmark_enricher/internal/domain"
)

func newTestRetriever(t *testing.T, handler http.HandlerFunc) (*Retriever, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewWithClient(server.Client(), 1024, logger), server
}

func TestRetrieve_ReturnsLiveContent(t *testing.T) {
	r, server := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "BookmarkEnricher/1.0", req.Header.Get("User-Agent"))
		w.Write([]byte("  live content  "))
	})

	got := r.Retrieve(context.Background(), server.URL, domain.PlatformGenericURL, "saved content")

	assert.Equal(t, "live content", got)
}

func TestRetrieve_EmptyURLFallsBack(t *testing.T) {
	r, _ := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {})

	got := r.Retrieve(context.Background(), "", domain.PlatformTwitter, "saved content")

	assert.Equal(t, "saved content", got)
}

func TestRetrieve_NonOKStatusFallsBack(t *testing.T) {
	r, server := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	got := r.Retrieve(context.Background(), server.URL, domain.PlatformTwitter, "saved content")

	assert.Equal(t, "saved content", got)
}

func TestRetrieve_EmptyBodyFallsBack(t *testing.T) {
	r, server := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("   \n\t  "))
	})

	got := r.Retrieve(context.Background(), server.URL, domain.PlatformLinkedIn, "saved content")

	assert.Equal(t, "saved content", got)
}

func TestRetrieve_UnreachableHostFallsBack(t *testing.T) {
	r, server := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {})
	server.Close()

	got := r.Retrieve(context.Background(), server.URL, domain.PlatformGenericURL, "saved content")

	assert.Equal(t, "saved content", got)
}

func TestRetrieve_TruncatesOversizedBody(t *testing.T) {
	r, server := newTestRetriever(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(strings.Repeat("x", 4096)))
	})

	got := r.Retrieve(context.Background(), server.URL, domain.PlatformGenericURL, "saved content")

	assert.Len(t, got, 1024)
}
