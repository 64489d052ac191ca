package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeWorkRemotelySource_Fetch(t *testing.T) {
	page := `<html><body>
	<section class="jobs">
		<ul>
			<li>
				<a href="/remote-jobs/acme-backend-engineer">
					<span class="title">Backend Engineer</span>
					<span class="company">Acme</span>
					<span class="region">Anywhere in the World</span>
				</a>
			</li>
			<li>
				<a href="/remote-jobs/studio-designer">
					<span class="title">Product Designer</span>
					<span class="company">Studio</span>
					<span class="region">Europe Only</span>
				</a>
			</li>
			<li class="view-all"><a href="/categories/remote-programming-jobs">View all</a></li>
		</ul>
	</section>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/categories/remote-programming-jobs" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := NewWeWorkRemotelySourceWithBaseURL(srv.URL)

	candidates, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}

	first := candidates[0]
	if first.Source != "weworkremotely" {
		t.Errorf("Source = %q", first.Source)
	}
	if first.Title != "Backend Engineer" || first.Company != "Acme" || first.Location != "Anywhere in the World" {
		t.Errorf("unexpected fields: %+v", first)
	}
	if first.ExternalID != "" {
		t.Errorf("board exposes no external ids, got %q", first.ExternalID)
	}
	if first.ApplyURL != srv.URL+"/remote-jobs/acme-backend-engineer" {
		t.Errorf("ApplyURL = %q", first.ApplyURL)
	}

	// Entries without a title, like the trailing view-all row, are skipped.
	for _, c := range candidates {
		if c.Title == "" {
			t.Errorf("candidate with empty title leaked through: %+v", c)
		}
	}
}
