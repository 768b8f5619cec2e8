package ebay

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"

	"github.com/Jalesh-poop/HotWheels-Backend/internal/model"
	"github.com/Jalesh-poop/HotWheels-Backend/internal/testutil"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		AppID:   testutil.GetTestEbayAppID(),
		BaseURL: serverURL,
	})
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("OPERATION-NAME"); got != "findCompletedItems" {
			t.Errorf("OPERATION-NAME = %q, want findCompletedItems", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), model.SearchParams{Query: "camaro"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(result.Listings) != 2 {
		t.Errorf("got %d listings, want 2", len(result.Listings))
	}
	if result.Pagination.TotalListings != 47 {
		t.Errorf("TotalListings = %d, want 47", result.Pagination.TotalListings)
	}
}

func TestClient_SearchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Search(context.Background(), model.SearchParams{Query: "camaro"})
	if err == nil {
		t.Fatal("expected error for non-200 upstream status")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error should carry upstream status, got %q", err.Error())
	}
}

func TestClient_SearchGzipResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte(sampleResponse))
		gz.Close()
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), model.SearchParams{Query: "camaro"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Listings) != 2 {
		t.Errorf("got %d listings from gzip body, want 2", len(result.Listings))
	}
}

func TestClient_SearchBrotliResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		bw.Write([]byte(sampleResponse))
		bw.Close()
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), model.SearchParams{Query: "camaro"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Listings) != 2 {
		t.Errorf("got %d listings from brotli body, want 2", len(result.Listings))
	}
}

func TestClient_UnavailableWithoutAppID(t *testing.T) {
	client := NewClient(Config{})

	if client.Available() {
		t.Error("client should not be available without an App ID")
	}

	_, err := client.Search(context.Background(), model.SearchParams{Query: "camaro"})
	if err == nil {
		t.Fatal("expected error when searching without an App ID")
	}
	if err.Error() != "eBay app ID not configured" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestNewProvider_Fallback(t *testing.T) {
	if _, ok := NewProvider(Config{AppID: "some-app-id"}).(*Client); !ok {
		t.Error("configured App ID should select the real client")
	}
	if _, ok := NewProvider(Config{}).(*MockProvider); !ok {
		t.Error("missing App ID should select the mock provider")
	}
}
