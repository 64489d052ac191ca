package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"job-hunt-agent/internal/usecase"
)

const remotivePublicationLayout = "2006-01-02T15:04:05"

// RemotiveSource pulls listings from the Remotive public JSON API.
type RemotiveSource struct {
	baseURL string
	search  string
	client  *http.Client
}

func NewRemotiveSource(search string) *RemotiveSource {
	return &RemotiveSource{
		baseURL: "https://remotive.com/api/remote-jobs",
		search:  strings.TrimSpace(search),
		client:  &http.Client{Timeout: 25 * time.Second},
	}
}

func NewRemotiveSourceWithBaseURL(baseURL, search string) *RemotiveSource {
	s := NewRemotiveSource(search)
	if strings.TrimSpace(baseURL) != "" {
		s.baseURL = strings.TrimSpace(baseURL)
	}
	return s
}

func (s *RemotiveSource) Name() string { return "remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"candidate_required_location"`
	Description string `json:"description"`
	PublishedAt string `json:"publication_date"`
}

func (s *RemotiveSource) Fetch(ctx context.Context) ([]usecase.Candidate, error) {
	endpoint := s.baseURL
	if s.search != "" {
		endpoint += "?search=" + url.QueryEscape(s.search)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}

	var parsed remotiveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("remotive: decode response: %w", err)
	}

	out := make([]usecase.Candidate, 0, len(parsed.Jobs))
	for _, j := range parsed.Jobs {
		out = append(out, usecase.Candidate{
			Source:      s.Name(),
			ExternalID:  strconv.Itoa(j.ID),
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.Location,
			Description: j.Description,
			ApplyURL:    j.URL,
			PostedAt:    parseRemotiveTime(j.PublishedAt),
		})
	}
	return out, nil
}

func parseRemotiveTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(remotivePublicationLayout, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			t2 = t2.UTC()
			return &t2
		}
		return nil
	}
	t = t.UTC()
	return &t
}
