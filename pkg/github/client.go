package github

import (
	"context"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// DefaultRequestTimeout bounds each individual HTTP call. There is no
// aggregate timeout for a run.
const DefaultRequestTimeout = 10 * time.Second

// listPageSize is the per_page value used when listing repositories.
const listPageSize = 100

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client with the provided token.
// A timeout of zero falls back to DefaultRequestTimeout.
func NewClient(token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = timeout

	return &Client{
		client: github.NewClient(tc),
	}
}

// ListRepositories fetches all repositories for the authenticated user,
// requesting pages of up to 100 items until a page comes back empty. Any
// failed page aborts the whole listing with an *APIError; no partial result
// is returned. API order is preserved and nothing is deduplicated.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	var all []Repository

	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{Page: 1, PerPage: listPageSize},
	}

	for {
		repos, _, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, WrapAPIError(err)
		}

		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			all = append(all, Repository{
				Name:    repo.GetName(),
				Owner:   repo.GetOwner().GetLogin(),
				Private: repo.GetPrivate(),
			})
		}
		opts.Page++
	}

	return all, nil
}

// DeleteRepository deletes the given repository and returns true only when
// the API answered 204 No Content. Every other status and any transport
// failure reads as false.
func (c *Client) DeleteRepository(ctx context.Context, owner, name string) bool {
	resp, err := c.client.Repositories.Delete(ctx, owner, name)
	if err != nil {
		return false
	}
	return resp.StatusCode == http.StatusNoContent
}

// Ensure Client implements the interface
var _ APIClient = (*Client)(nil)
