package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"job-hunt-agent/internal/usecase"

	"github.com/gocolly/colly/v2"
)

// WeWorkRemotelySource scrapes the We Work Remotely listing pages. The board
// exposes no per-job external ids, so ingestion falls back to the
// content-derived canonical identity.
type WeWorkRemotelySource struct {
	baseURL     string
	allowedHost string
	categories  []string
}

func NewWeWorkRemotelySource(categories ...string) *WeWorkRemotelySource {
	if len(categories) == 0 {
		categories = []string{"remote-programming-jobs"}
	}
	s := &WeWorkRemotelySource{
		baseURL:    "https://weworkremotely.com",
		categories: categories,
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

func NewWeWorkRemotelySourceWithBaseURL(baseURL string, categories ...string) *WeWorkRemotelySource {
	s := NewWeWorkRemotelySource(categories...)
	if strings.TrimSpace(baseURL) != "" {
		s.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		s.allowedHost = hostFromBaseURL(s.baseURL)
	}
	return s
}

func (s *WeWorkRemotelySource) Name() string { return "weworkremotely" }

func (s *WeWorkRemotelySource) Fetch(ctx context.Context) ([]usecase.Candidate, error) {
	out := make([]usecase.Candidate, 0)
	for _, category := range s.categories {
		items, err := s.fetchCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("weworkremotely: category %s: %w", category, err)
		}
		out = append(out, items...)
	}
	return out, nil
}

func (s *WeWorkRemotelySource) fetchCategory(ctx context.Context, category string) ([]usecase.Candidate, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*" + s.allowedHost + "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 300 * time.Millisecond})

	items := make([]usecase.Candidate, 0)

	c.OnHTML("section.jobs li", func(e *colly.HTMLElement) {
		if ctx.Err() != nil {
			return
		}

		title := strings.TrimSpace(e.ChildText("span.title"))
		company := strings.TrimSpace(e.ChildText("span.company"))
		region := strings.TrimSpace(e.ChildText("span.region"))

		href := ""
		e.ForEach("a[href]", func(_ int, a *colly.HTMLElement) {
			h := strings.TrimSpace(a.Attr("href"))
			if href == "" && strings.Contains(h, "/remote-jobs/") {
				href = a.Request.AbsoluteURL(h)
			}
		})

		if title == "" || company == "" || href == "" {
			return
		}

		items = append(items, usecase.Candidate{
			Source:   s.Name(),
			Title:    title,
			Company:  company,
			Location: region,
			ApplyURL: href,
		})
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	listURL := s.baseURL + "/categories/" + strings.Trim(category, "/")
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()

	if reqErr != nil {
		return nil, reqErr
	}
	return items, nil
}

// hostFromBaseURL returns the hostname without the port; colly matches
// allowed domains against URL.Hostname().
func hostFromBaseURL(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Hostname() == "" {
		return base
	}
	return u.Hostname()
}
