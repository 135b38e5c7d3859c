// Package github provides the GitHub API access ghpurge needs: token
// resolution, paginated repository listing for the authenticated user, and
// per-repository deletion.
//
// The package includes:
// - APIClient interface consumed by the deletion workflow
// - Client implementation backed by the GitHub REST API
// - AuthManager for resolving the bearer token from its sources
// - APIError carrying HTTP status codes and API messages
package github
