package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://api.github.com"
	fetchTimeout   = 10 * time.Second
	maxRepos       = 30
)

// Client fetches profile and repository facts from the public
// code-hosting API. Transport and decode errors are returned to the
// caller; the provider absorbs them into an empty snapshot so the game
// treats "fetch failed" and "no data yet" identically.
type Client struct {
	base  string
	login string
	http  *http.Client
}

// NewClient creates a client for the given account login
func NewClient(login string) *Client {
	return &Client{
		base:  defaultAPIBase,
		login: login,
		http:  &http.Client{Timeout: fetchTimeout},
	}
}

type apiProfile struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

type apiRepo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Fork        bool     `json:"fork"`
	Topics      []string `json:"topics"`
}

// FetchProfileFacts retrieves account-level facts
func (c *Client) FetchProfileFacts(ctx context.Context) ([]Fact, error) {
	var profile apiProfile
	url := fmt.Sprintf("%s/users/%s", c.base, c.login)
	if err := c.getJSON(ctx, url, &profile); err != nil {
		return nil, fmt.Errorf("profile fetch: %w", err)
	}

	var out []Fact
	if profile.Name != "" {
		out = append(out, Fact{
			Name:        profile.Name,
			Description: profile.Bio,
			Origin:      OriginProfile,
			Category:    "bio",
		})
	}
	if profile.Company != "" {
		out = append(out, Fact{
			Name:     profile.Company,
			Details:  profile.Location,
			Origin:   OriginProfile,
			Category: "work",
		})
	}
	if profile.Blog != "" {
		out = append(out, Fact{
			Name:     profile.Blog,
			Origin:   OriginProfile,
			Category: "contact",
		})
	}
	if profile.PublicRepos > 0 {
		out = append(out, Fact{
			Name:        fmt.Sprintf("%d public repos", profile.PublicRepos),
			Description: fmt.Sprintf("%d followers", profile.Followers),
			Origin:      OriginProfile,
			Category:    "work",
		})
	}
	return out, nil
}

// FetchProjectFacts retrieves one fact per public non-fork repository
func (c *Client) FetchProjectFacts(ctx context.Context) ([]Fact, error) {
	var repos []apiRepo
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.base, c.login, maxRepos)
	if err := c.getJSON(ctx, url, &repos); err != nil {
		return nil, fmt.Errorf("repo fetch: %w", err)
	}

	out := make([]Fact, 0, len(repos))
	for _, r := range repos {
		if r.Fork || r.Name == "" {
			continue
		}
		out = append(out, Fact{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			StarCount:   r.Stars,
			Origin:      OriginProject,
			Category:    projectCategory(r),
		})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// projectCategory derives the fixed category tag from repo metadata
func projectCategory(r apiRepo) string {
	for _, t := range r.Topics {
		switch t {
		case "game", "gamedev":
			return "game"
		case "cli", "tool", "tooling":
			return "tool"
		case "data", "database":
			return "data"
		}
	}
	switch strings.ToLower(r.Language) {
	case "go":
		return "go"
	case "javascript", "typescript", "html", "css":
		return "web"
	case "":
		return "tool"
	default:
		return "language"
	}
}
