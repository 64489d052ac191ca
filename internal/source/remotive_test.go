package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const remotiveFixture = `{
	"job-count": 2,
	"jobs": [
		{
			"id": 1910001,
			"url": "https://remotive.com/remote-jobs/software-dev/backend-engineer-1910001",
			"title": "Backend Engineer",
			"company_name": "Acme",
			"candidate_required_location": "Worldwide",
			"publication_date": "2026-08-20T09:30:00",
			"description": "<p>We use Python and SQL.</p>"
		},
		{
			"id": 1910002,
			"url": "https://remotive.com/remote-jobs/design/product-designer-1910002",
			"title": "Product Designer",
			"company_name": "Studio",
			"candidate_required_location": "Europe",
			"publication_date": "not a timestamp",
			"description": "<p>Figma.</p>"
		}
	]
}`

func TestRemotiveSource_Fetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remotiveFixture))
	}))
	defer srv.Close()

	s := NewRemotiveSourceWithBaseURL(srv.URL, "backend")

	candidates, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotQuery != "backend" {
		t.Errorf("search query = %q, want %q", gotQuery, "backend")
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}

	first := candidates[0]
	if first.Source != "remotive" || first.ExternalID != "1910001" {
		t.Errorf("identity fields = %q/%q", first.Source, first.ExternalID)
	}
	if first.Title != "Backend Engineer" || first.Company != "Acme" {
		t.Errorf("unexpected content fields: %+v", first)
	}
	want := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	if first.PostedAt == nil || !first.PostedAt.Equal(want) {
		t.Errorf("PostedAt = %v, want %v", first.PostedAt, want)
	}

	// Unparseable publication dates degrade to nil instead of failing the pull.
	if candidates[1].PostedAt != nil {
		t.Errorf("bad publication_date must yield nil PostedAt, got %v", candidates[1].PostedAt)
	}
}

func TestRemotiveSource_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewRemotiveSourceWithBaseURL(srv.URL, "")
	if _, err := s.Fetch(context.Background()); err == nil {
		t.Fatalf("Fetch() must fail on a non-200 response")
	}
}
