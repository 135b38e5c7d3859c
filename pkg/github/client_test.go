package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// createTestClient creates a GitHub client configured to use the test server
func createTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client := NewClient("test-token", time.Second)

	// Parse the test server URL and ensure it has a trailing slash
	serverURL, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("Failed to parse server URL: %v", err)
	}

	// Override the base URL to point to our test server
	client.client.BaseURL = serverURL

	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-token", 0)

	if client == nil {
		t.Fatal("Expected client to be created, got nil")
	}

	if client.client == nil {
		t.Fatal("Expected GitHub client to be initialized")
	}
}

func TestListRepositoriesPagination(t *testing.T) {
	pageRequests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/repos" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}

		pageRequests++
		w.Header().Set("Content-Type", "application/json")

		// One non-empty page followed by an empty page
		if r.URL.Query().Get("page") == "1" {
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "repo1", "owner": map[string]interface{}{"login": "testuser"}, "private": false},
				{"name": "repo2", "owner": map[string]interface{}{"login": "testuser"}, "private": true},
			})
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	}))
	defer server.Close()

	client := createTestClient(t, server)

	repos, err := client.ListRepositories(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if pageRequests != 2 {
		t.Errorf("Expected exactly 2 page requests, got %d", pageRequests)
	}

	if len(repos) != 2 {
		t.Fatalf("Expected 2 repositories, got %d", len(repos))
	}

	if repos[0].Name != "repo1" || repos[0].Owner != "testuser" || repos[0].Private {
		t.Errorf("Unexpected first repository: %+v", repos[0])
	}

	if repos[1].Name != "repo2" || !repos[1].Private {
		t.Errorf("Unexpected second repository: %+v", repos[1])
	}
}

func TestListRepositoriesPreservesAPIOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("page") {
		case "1":
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "zulu", "owner": map[string]interface{}{"login": "u"}},
				{"name": "alpha", "owner": map[string]interface{}{"login": "u"}},
			})
		case "2":
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "mike", "owner": map[string]interface{}{"login": "u"}},
			})
		default:
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
		}
	}))
	defer server.Close()

	client := createTestClient(t, server)

	repos, err := client.ListRepositories(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, repo.Name)
	}

	expected := []string{"zulu", "alpha", "mike"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, names)
		}
	}
}

func TestListRepositoriesErrorCarriesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	}))
	defer server.Close()

	client := createTestClient(t, server)

	repos, err := client.ListRepositories(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if repos != nil {
		t.Errorf("Expected no partial results, got %d repositories", len(repos))
	}

	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Expected error to contain status code 401, got: %v", err)
	}

	if !strings.Contains(err.Error(), "Bad credentials") {
		t.Errorf("Expected error to contain API message, got: %v", err)
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}

	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status code 401, got %d", apiErr.StatusCode)
	}
}

func TestListRepositoriesMidPaginationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// First page succeeds, second page blows up
		if r.URL.Query().Get("page") == "1" {
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"name": "repo1", "owner": map[string]interface{}{"login": "u"}},
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	}))
	defer server.Close()

	client := createTestClient(t, server)

	repos, err := client.ListRepositories(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if repos != nil {
		t.Errorf("Expected no partial results after a failed page, got %d repositories", len(repos))
	}
}

func TestListRepositoriesConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	client := createTestClient(t, server)
	server.Close() // Force connection refusals

	repos, err := client.ListRepositories(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if repos != nil {
		t.Errorf("Expected no results, got %d repositories", len(repos))
	}

	if !IsNetworkError(err) {
		t.Errorf("Expected a network-classified error, got: %v", err)
	}
}

func TestDeleteRepository(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{
			name:       "no content means deleted",
			statusCode: http.StatusNoContent,
			expected:   true,
		},
		{
			name:       "not found is a failure",
			statusCode: http.StatusNotFound,
			expected:   false,
		},
		{
			name:       "forbidden is a failure",
			statusCode: http.StatusForbidden,
			expected:   false,
		},
		{
			name:       "server error is a failure",
			statusCode: http.StatusInternalServerError,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("Expected DELETE, got %s", r.Method)
				}
				if r.URL.Path != "/repos/testowner/testrepo" {
					t.Errorf("Unexpected path: %s", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := createTestClient(t, server)

			result := client.DeleteRepository(context.Background(), "testowner", "testrepo")
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestDeleteRepositoryConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	client := createTestClient(t, server)
	server.Close()

	if client.DeleteRepository(context.Background(), "testowner", "testrepo") {
		t.Error("Expected delete to report failure on connection error")
	}
}
