package sitegen

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
)

// The generator is a pure transformation from a profile snapshot and project
// list to one self-contained HTML document. It performs no network or storage
// I/O and never mutates its inputs.

type socialLink struct {
	Platform string
	URL      string
	Icon     string
}

type projectCard struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
	URL          string
	DemoLink     string
}

type pageData struct {
	Name           string
	Bio            string
	Email          string
	Phone          string
	Location       string
	AvatarURL      string
	CVURL          string
	Experience     string
	Education      string
	FieldOfWork    string
	GithubUsername string
	PagesOrigin    string
	Skills         []string
	SocialLinks    []socialLink
	Projects       []projectCard
	Year           int
}

var pageTemplate = template.Must(template.New("portfolio").Parse(portfolioTemplate))

// Generate renders the static portfolio page for one owner. Projects are
// listed in ascending sort_order regardless of the order the caller passes
// them in; every optional field is gated on presence so an absent value never
// produces an empty element.
func Generate(u *user.User, projects []*project.Project) (string, error) {
	data := buildPageData(u, projects)

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render portfolio page: %w", err)
	}
	return sb.String(), nil
}

func buildPageData(u *user.User, projects []*project.Project) pageData {
	data := pageData{
		Name:           u.Name,
		Bio:            deref(u.Bio),
		Email:          u.Email,
		Phone:          deref(u.Phone),
		Location:       deref(u.Location),
		AvatarURL:      deref(u.AvatarURL),
		CVURL:          normalizePtr(u.CVURL),
		Experience:     deref(u.Experience),
		Education:      deref(u.Education),
		FieldOfWork:    deref(u.FieldOfWork),
		GithubUsername: u.GithubUsername,
		Skills:         append([]string(nil), u.Skills...),
		Year:           time.Now().Year(),
	}
	if data.FieldOfWork == "" {
		data.FieldOfWork = "Web Development"
	}
	if u.GithubUsername != "" {
		data.PagesOrigin = fmt.Sprintf("https://%s.github.io/", u.GithubUsername)
	}

	githubURL := normalizePtr(u.GithubURL)
	if githubURL == "" && u.GithubUsername != "" {
		githubURL = "https://github.com/" + u.GithubUsername
	}
	for _, link := range []socialLink{
		{Platform: "GitHub", URL: githubURL, Icon: "🐙"},
		{Platform: "LinkedIn", URL: normalizePtr(u.Linkedin), Icon: "💼"},
		{Platform: "Twitter", URL: normalizePtr(u.Twitter), Icon: "🐦"},
		{Platform: "Website", URL: normalizePtr(u.Website), Icon: "🌐"},
	} {
		if link.URL != "" {
			data.SocialLinks = append(data.SocialLinks, link)
		}
	}

	ordered := append([]*project.Project(nil), projects...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})
	for _, p := range ordered {
		data.Projects = append(data.Projects, projectCard{
			Title:        p.Title,
			Description:  p.Description,
			ImageURL:     deref(p.ImageURL),
			Technologies: append([]string(nil), p.Technologies...),
			URL:          normalizePtr(p.URL),
			DemoLink:     normalizePtr(p.DemoLink),
		})
	}

	return data
}
