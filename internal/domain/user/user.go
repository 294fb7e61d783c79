package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is one portfolio owner. The row is created on the first successful
// GitHub sign-in and updated through explicit profile saves; it is never hard
// deleted.
type User struct {
	ID             uuid.UUID `json:"id"`
	GithubID       string    `json:"github_id"`
	GithubUsername string    `json:"github_username"`
	GithubURL      *string   `json:"github_url,omitempty"`
	GithubToken    *string   `json:"-"`
	Username       *string   `json:"username,omitempty"`

	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Bio       *string  `json:"bio,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	JobTitle  *string  `json:"job_title,omitempty"`
	FieldOfWork *string `json:"field_of_work,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	Education   *string `json:"education,omitempty"`
	Skills      []string `json:"skills"`

	Website   *string `json:"website,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Youtube   *string `json:"youtube,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	CVURL     *string `json:"cv_url,omitempty"`

	// DeployedSiteURL is written back after a successful publish only.
	DeployedSiteURL *string `json:"deployed_site_url,omitempty"`

	IsProfilePublic bool      `json:"is_profile_public"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LookupField names one column a public portfolio lookup may match on. The
// ordered strategy list lives with the use case; the repository only knows how
// to turn a field into a predicate.
type LookupField string

const (
	LookupByGithubUsername LookupField = "github_username"
	LookupByUsername       LookupField = "username"
	LookupByEmailPrefix    LookupField = "email_prefix"
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByGithubID(ctx context.Context, githubID string) (*User, error)
	// FindPublic matches a publicly visible profile on a single lookup field.
	FindPublic(ctx context.Context, field LookupField, term string) (*User, error)
	// Upsert inserts on first login, updates on conflict of github_id.
	Upsert(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, u *User) error
	// UpdateDeployedSiteURL is the single field written back after a publish.
	UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error
}
