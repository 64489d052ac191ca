package posting

import (
	"testing"
	"time"
)

func TestCanonicalID_ExternalIDWins(t *testing.T) {
	a := CanonicalID("remotive", "12345", "Backend Engineer", "Acme", "https://a.example/jobs/1")
	b := CanonicalID("remotive", "12345", "Totally Different Title", "Other Co", "https://b.example/jobs/2")

	if a != b {
		t.Fatalf("same (source, external id) must collide, got %s vs %s", a, b)
	}
}

func TestCanonicalID_DifferentSourcesDoNotCollide(t *testing.T) {
	a := CanonicalID("remotive", "12345", "", "", "")
	b := CanonicalID("weworkremotely", "12345", "", "", "")

	if a == b {
		t.Fatalf("different sources with the same external id must not collide")
	}
}

func TestCanonicalID_ContentFallbackNormalizes(t *testing.T) {
	a := CanonicalID("feed", "", "Backend  Engineer", "ACME Inc", "https://acme.example/apply")
	b := CanonicalID("feed", "", "  backend engineer ", "acme inc", "HTTPS://ACME.EXAMPLE/APPLY")

	if a != b {
		t.Fatalf("content fallback must be case and whitespace insensitive, got %s vs %s", a, b)
	}

	c := CanonicalID("feed", "", "Frontend Engineer", "ACME Inc", "https://acme.example/apply")
	if a == c {
		t.Fatalf("different titles must produce different canonical ids")
	}
}

func TestCanonicalID_BlankExternalIDFallsBack(t *testing.T) {
	a := CanonicalID("feed", "   ", "Backend Engineer", "Acme", "https://acme.example/apply")
	b := CanonicalID("feed", "", "Backend Engineer", "Acme", "https://acme.example/apply")

	if a != b {
		t.Fatalf("whitespace-only external id must behave like an absent one")
	}
}

func TestShouldRefresh(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	tests := []struct {
		name     string
		incoming *time.Time
		stored   *time.Time
		want     bool
	}{
		{"incoming nil never refreshes", nil, &older, false},
		{"both nil never refreshes", nil, nil, false},
		{"stored nil refreshes", &older, nil, true},
		{"incoming newer refreshes", &newer, &older, true},
		{"incoming equal does not refresh", &older, &older, false},
		{"incoming older does not refresh", &older, &newer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldRefresh(tt.incoming, tt.stored); got != tt.want {
				t.Errorf("ShouldRefresh() = %v, want %v", got, tt.want)
			}
		})
	}
}
