package github

import "context"

// APIClient defines the GitHub API operations the deletion workflow uses.
type APIClient interface {
	// ListRepositories fetches every repository of the authenticated user,
	// in API order. Any page failure aborts the whole listing.
	ListRepositories(ctx context.Context) ([]Repository, error)

	// DeleteRepository deletes one repository and reports success as a
	// boolean. Failure never surfaces as an error: the workflow tolerates
	// partial failure across a batch.
	DeleteRepository(ctx context.Context, owner, name string) bool
}
