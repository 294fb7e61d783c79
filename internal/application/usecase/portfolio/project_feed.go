package portfolio

import (
	"context"
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
)

type ProjectFeedUseCase struct {
	portfolios *GetPublicPortfolioUseCase
	baseURL    string
}

func NewProjectFeedUseCase(portfolios *GetPublicPortfolioUseCase, baseURL string) *ProjectFeedUseCase {
	return &ProjectFeedUseCase{portfolios: portfolios, baseURL: baseURL}
}

// Execute builds an Atom feed of one public portfolio's projects, newest
// first by created_at.
func (uc *ProjectFeedUseCase) Execute(ctx context.Context, term string) (string, error) {
	p, err := uc.portfolios.Execute(ctx, term)
	if err != nil {
		return "", err
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s's Projects", p.User.Name),
		Link:        &feeds.Link{Href: uc.portfolioLink(p.User)},
		Description: fmt.Sprintf("Projects from %s's portfolio", p.User.Name),
		Author:      &feeds.Author{Name: p.User.Name, Email: p.User.Email},
		Created:     p.User.CreatedAt,
		Updated:     p.User.UpdatedAt,
	}

	for _, proj := range p.Projects {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          proj.ID.String(),
			Title:       proj.Title,
			Link:        &feeds.Link{Href: uc.projectLink(p.User, proj)},
			Description: proj.Description,
			Created:     proj.CreatedAt,
			Updated:     proj.UpdatedAt,
		})
	}

	return feed.ToAtom()
}

func (uc *ProjectFeedUseCase) portfolioLink(u *user.User) string {
	if u.DeployedSiteURL != nil && *u.DeployedSiteURL != "" {
		return *u.DeployedSiteURL
	}
	return fmt.Sprintf("%s/api/portfolio/%s", uc.baseURL, u.GithubUsername)
}

func (uc *ProjectFeedUseCase) projectLink(u *user.User, p *project.Project) string {
	if p.URL != nil && *p.URL != "" {
		return *p.URL
	}
	if p.DemoLink != nil && *p.DemoLink != "" {
		return *p.DemoLink
	}
	return uc.portfolioLink(u)
}
