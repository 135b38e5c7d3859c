package github

// Repository represents a GitHub repository owned by the authenticated user.
// Identity is (Owner, Name); values come from list responses and are never
// mutated afterwards.
type Repository struct {
	Name    string `json:"name"`
	Owner   string `json:"owner"`
	Private bool   `json:"private"`
}

// FullName returns the owner-qualified repository name.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Visibility returns the user-facing visibility label.
func (r Repository) Visibility() string {
	if r.Private {
		return "Private"
	}
	return "Public"
}
