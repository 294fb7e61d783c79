package service

import "context"

// GitHubIdentity is the subset of the provider's user record the application
// cares about.
type GitHubIdentity struct {
	ID        string
	Login     string
	Name      string
	Email     string
	AvatarURL string
	HTMLURL   string
	Bio       string
	Location  string
}

// IdentityProvider wraps the OAuth dance with the source-hosting provider.
type IdentityProvider interface {
	// AuthCodeURL returns the provider authorize URL carrying the given state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)
	// FetchUser loads the authenticated user behind a token, falling back to
	// the primary verified email when the public profile hides it.
	FetchUser(ctx context.Context, token string) (*GitHubIdentity, error)
}
