package github

import (
	"context"
	"fmt"
	"strconv"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/config"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
)

// OAuthProvider implements the GitHub half of the sign-in flow. The repo
// scope is requested up front so the stored token can later create and write
// repositories during deploys.
type OAuthProvider struct {
	conf *oauth2.Config
}

func NewOAuthProvider(cfg config.Config) *OAuthProvider {
	return &OAuthProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.GitHub.ClientID,
			ClientSecret: cfg.GitHub.ClientSecret,
			RedirectURL:  cfg.GitHub.RedirectURL,
			Scopes:       []string{"read:user", "user:email", "repo"},
			Endpoint:     githuboauth.Endpoint,
		},
	}
}

func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

func (p *OAuthProvider) Exchange(ctx context.Context, code string) (string, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return "", apperror.NewUnauthorized("failed to exchange authorization code", err)
	}
	return token.AccessToken, nil
}

func (p *OAuthProvider) FetchUser(ctx context.Context, token string) (*service.GitHubIdentity, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(ctx, ts))

	ghUser, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, apperror.NewUpstream("failed to fetch GitHub user", err)
	}

	email := ghUser.GetEmail()
	if email == "" {
		// Profiles often hide their email; the user:email scope still lets
		// us read the primary verified address.
		emails, _, err := client.Users.ListEmails(ctx, nil)
		if err == nil {
			for _, e := range emails {
				if e.GetPrimary() {
					email = e.GetEmail()
					break
				}
			}
		}
	}
	if email == "" {
		email = fmt.Sprintf("%s@users.noreply.github.com", ghUser.GetLogin())
	}

	return &service.GitHubIdentity{
		ID:        strconv.FormatInt(ghUser.GetID(), 10),
		Login:     ghUser.GetLogin(),
		Name:      ghUser.GetName(),
		Email:     email,
		AvatarURL: ghUser.GetAvatarURL(),
		HTMLURL:   ghUser.GetHTMLURL(),
		Bio:       ghUser.GetBio(),
		Location:  ghUser.GetLocation(),
	}, nil
}
