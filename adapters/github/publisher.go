package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

// PagesPublisher pushes a generated portfolio to a GitHub repository and
// serves it through GitHub Pages. The whole flow is convergent: every step
// either tolerates "already exists" or overwrites by path, so re-invoking
// after a partial failure repairs the repository.
type PagesPublisher struct {
	logger logger.Logger

	// initDelay is how long to wait after creating a repository before
	// writing files. A freshly created auto-init repository may not have its
	// default branch ref resolvable yet; readiness is assumed after the
	// delay, not verified.
	initDelay time.Duration

	// baseURL overrides the GitHub API endpoint in tests.
	baseURL *url.URL
}

func NewPagesPublisher(log logger.Logger, initDelay time.Duration) *PagesPublisher {
	return &PagesPublisher{logger: log, initDelay: initDelay}
}

// NewPagesPublisherForTesting points the publisher at a fake GitHub API and
// skips the post-creation delay.
func NewPagesPublisherForTesting(log logger.Logger, apiBaseURL string) (*PagesPublisher, error) {
	base, err := url.Parse(apiBaseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse test base url: %w", err)
	}
	return &PagesPublisher{logger: log, baseURL: base}, nil
}

func (p *PagesPublisher) client(ctx context.Context, token string) *gh.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(ctx, ts))
	if p.baseURL != nil {
		client.BaseURL = p.baseURL
		client.UploadURL = p.baseURL
	}
	return client
}

func (p *PagesPublisher) Publish(ctx context.Context, token string, input service.PublishInput) (*service.PublishResult, error) {
	if token == "" {
		return nil, apperror.NewReauthRequired("no GitHub token on file", nil)
	}
	if input.RepoName == "" {
		return nil, apperror.NewInvalidInput("repository name is required", nil)
	}

	client := p.client(ctx, token)

	// Capability probe: a token missing the repo scope must fail here, before
	// any mutating call, with a distinct reauthorization error.
	authUser, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, apperror.NewReauthRequired("failed to read authenticated user", err)
	}
	listOpts := &gh.RepositoryListByAuthenticatedUserOptions{ListOptions: gh.ListOptions{PerPage: 1}}
	if _, _, err := client.Repositories.ListByAuthenticatedUser(ctx, listOpts); err != nil {
		return nil, apperror.NewReauthRequired("token cannot list repositories", err)
	}

	owner := input.Owner
	if owner == "" {
		owner = authUser.GetLogin()
	}

	repo, resp, err := client.Repositories.Get(ctx, owner, input.RepoName)
	if err != nil {
		if resp == nil || resp.StatusCode != http.StatusNotFound {
			return nil, apperror.NewUpstream("failed to fetch repository", err)
		}

		p.logger.Info("Creating portfolio repository", zap.String("owner", owner), zap.String("repo", input.RepoName))
		_, _, err = client.Repositories.Create(ctx, "", &gh.Repository{
			Name:        gh.String(input.RepoName),
			Description: gh.String(input.Description),
			Private:     gh.Bool(false),
			AutoInit:    gh.Bool(true),
			HasIssues:   gh.Bool(false),
			HasProjects: gh.Bool(false),
			HasWiki:     gh.Bool(false),
		})
		if err != nil {
			return nil, apperror.NewUpstream("failed to create repository", err)
		}

		if p.initDelay > 0 {
			select {
			case <-time.After(p.initDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		repo, _, err = client.Repositories.Get(ctx, owner, input.RepoName)
		if err != nil {
			return nil, apperror.NewUpstream("failed to fetch repository after creation", err)
		}
	} else {
		p.logger.Info("Repository exists, updating in place", zap.String("owner", owner), zap.String("repo", input.RepoName))
	}

	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	ref, _, err := client.Git.GetRef(ctx, owner, input.RepoName, "heads/"+branch)
	if err != nil {
		return nil, apperror.NewUpstream("failed to resolve default branch ref", err)
	}

	tree, _, err := client.Git.GetTree(ctx, owner, input.RepoName, ref.GetObject().GetSHA(), false)
	if err != nil {
		return nil, apperror.NewUpstream("failed to fetch commit tree", err)
	}

	existing := map[string]string{}
	for _, entry := range tree.Entries {
		existing[entry.GetPath()] = entry.GetSHA()
	}

	if err := p.putFile(ctx, client, owner, input.RepoName, branch,
		"index.html", "Update portfolio content", input.IndexHTML, existing["index.html"]); err != nil {
		return nil, err
	}
	if err := p.putFile(ctx, client, owner, input.RepoName, branch,
		"README.md", "Update README", input.ReadmeMD, existing["README.md"]); err != nil {
		return nil, err
	}

	// Enabling Pages on a repository that already serves Pages is signalled
	// as 409 Conflict; that condition is already satisfied, not a failure.
	pages := &gh.Pages{Source: &gh.PagesSource{
		Branch: gh.String(branch),
		Path:   gh.String("/"),
	}}
	_, resp, err = client.Repositories.EnablePages(ctx, owner, input.RepoName, pages)
	if err != nil {
		if resp == nil || resp.StatusCode != http.StatusConflict {
			return nil, apperror.NewUpstream("failed to enable GitHub Pages", err)
		}
		p.logger.Info("GitHub Pages already enabled", zap.String("repo", input.RepoName))
	}

	return &service.PublishResult{
		RepoURL: fmt.Sprintf("https://github.com/%s/%s", owner, input.RepoName),
		PageURL: fmt.Sprintf("https://%s.github.io/%s", owner, input.RepoName),
	}, nil
}

func (p *PagesPublisher) putFile(ctx context.Context, client *gh.Client, owner, repo, branch, path, message, content, sha string) error {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(message),
		Content: []byte(content),
		Branch:  gh.String(branch),
	}

	var err error
	if sha != "" {
		opts.SHA = gh.String(sha)
		_, _, err = client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	} else {
		_, _, err = client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		return apperror.NewUpstream(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
