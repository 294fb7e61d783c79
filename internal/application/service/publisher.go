package service

import "context"

// PublishInput is everything the repository publisher needs to put a generated
// portfolio live: the owning account's login, the target repository and the
// two files written at its root.
type PublishInput struct {
	Owner       string
	RepoName    string
	Description string
	IndexHTML   string
	ReadmeMD    string
}

type PublishResult struct {
	RepoURL string
	PageURL string
}

// Publisher ensures the given content is live at a predictable public URL
// under the authenticated account. Implementations must be convergent: calling
// Publish twice with the same input succeeds both times, the first call
// creating the repository and the second updating it in place.
type Publisher interface {
	Publish(ctx context.Context, token string, input PublishInput) (*PublishResult, error)
}
