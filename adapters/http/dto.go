package http

import (
	"time"

	"github.com/azizcs/portfolio-maker/internal/domain/deployment"
	"github.com/azizcs/portfolio-maker/internal/domain/project"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
)

// User DTOs

type UserDTO struct {
	ID             string  `json:"id"`
	GithubUsername string  `json:"github_username"`
	GithubURL      *string `json:"github_url,omitempty"`
	Username       *string `json:"username,omitempty"`

	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Bio         *string  `json:"bio,omitempty"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	JobTitle    *string  `json:"job_title,omitempty"`
	FieldOfWork *string  `json:"field_of_work,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
	Education   *string  `json:"education,omitempty"`
	Skills      []string `json:"skills"`

	Website   *string `json:"website,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Youtube   *string `json:"youtube,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	CVURL     *string `json:"cv_url,omitempty"`

	DeployedSiteURL *string   `json:"deployed_site_url,omitempty"`
	IsProfilePublic bool      `json:"is_profile_public"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:              u.ID.String(),
		GithubUsername:  u.GithubUsername,
		GithubURL:       u.GithubURL,
		Username:        u.Username,
		Name:            u.Name,
		Email:           u.Email,
		Bio:             u.Bio,
		AvatarURL:       u.AvatarURL,
		Location:        u.Location,
		Phone:           u.Phone,
		JobTitle:        u.JobTitle,
		FieldOfWork:     u.FieldOfWork,
		Experience:      u.Experience,
		Education:       u.Education,
		Skills:          u.Skills,
		Website:         u.Website,
		Linkedin:        u.Linkedin,
		Twitter:         u.Twitter,
		Instagram:       u.Instagram,
		Youtube:         u.Youtube,
		Facebook:        u.Facebook,
		CVURL:           u.CVURL,
		DeployedSiteURL: u.DeployedSiteURL,
		IsProfilePublic: u.IsProfilePublic,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type UpdateProfileRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email"`
	Username *string `json:"username"`

	Bio         *string  `json:"bio"`
	AvatarURL   *string  `json:"avatar_url"`
	Location    *string  `json:"location"`
	Phone       *string  `json:"phone"`
	JobTitle    *string  `json:"job_title"`
	FieldOfWork *string  `json:"field_of_work"`
	Experience  *string  `json:"experience"`
	Education   *string  `json:"education"`
	Skills      []string `json:"skills"`

	Website   *string `json:"website"`
	Linkedin  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	Youtube   *string `json:"youtube"`
	Facebook  *string `json:"facebook"`
	CVURL     *string `json:"cv_url"`

	IsProfilePublic bool `json:"is_profile_public"`
}

// Project DTOs

type ProjectRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	URL          *string    `json:"url"`
	DemoLink     *string    `json:"demo_link"`
	Technologies []string   `json:"technologies"`
	ImageURL     *string    `json:"image_url"`
	Status       string     `json:"status" binding:"omitempty,oneof=completed in-progress planned"`
	Category     string     `json:"category"`
	ProjectType  string     `json:"project_type"`
	Client       *string    `json:"client"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sort_order"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type ProjectDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	URL          *string    `json:"url,omitempty"`
	DemoLink     *string    `json:"demo_link,omitempty"`
	Technologies []string   `json:"technologies"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	ProjectType  string     `json:"project_type"`
	Client       *string    `json:"client,omitempty"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sort_order"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		URL:          p.URL,
		DemoLink:     p.DemoLink,
		Technologies: p.Technologies,
		ImageURL:     p.ImageURL,
		Status:       p.Status,
		Category:     p.Category,
		ProjectType:  p.ProjectType,
		Client:       p.Client,
		Featured:     p.Featured,
		SortOrder:    p.SortOrder,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Deploy DTOs

type DeployRequest struct {
	RepoName    string `json:"repoName" binding:"required"`
	Description string `json:"description"`
}

type DeployResponse struct {
	Success bool   `json:"success"`
	RepoURL string `json:"repoUrl"`
	PageURL string `json:"pageUrl"`
}

type DeploymentDTO struct {
	ID        string    `json:"id"`
	RepoName  string    `json:"repo_name"`
	RepoURL   string    `json:"repo_url"`
	PageURL   string    `json:"page_url"`
	CreatedAt time.Time `json:"created_at"`
}

func ToDeploymentDTOs(deployments []*deployment.Deployment) []DeploymentDTO {
	dtos := make([]DeploymentDTO, len(deployments))
	for i, d := range deployments {
		dtos[i] = DeploymentDTO{
			ID:        d.ID.String(),
			RepoName:  d.RepoName,
			RepoURL:   d.RepoURL,
			PageURL:   d.PageURL,
			CreatedAt: d.CreatedAt,
		}
	}
	return dtos
}
