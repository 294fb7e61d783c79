package persistence

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

var psqlUser = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, github_id, github_username, github_url, github_token, username,
	name, email, bio, avatar_url, location, phone, job_title, field_of_work,
	experience, education, skills, website, linkedin, twitter, instagram,
	youtube, facebook, cv_url, deployed_site_url, is_profile_public,
	created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID, &u.GithubID, &u.GithubUsername, &u.GithubURL, &u.GithubToken, &u.Username,
		&u.Name, &u.Email, &u.Bio, &u.AvatarURL, &u.Location, &u.Phone, &u.JobTitle, &u.FieldOfWork,
		&u.Experience, &u.Education, &u.Skills, &u.Website, &u.Linkedin, &u.Twitter, &u.Instagram,
		&u.Youtube, &u.Facebook, &u.CVURL, &u.DeployedSiteURL, &u.IsProfilePublic,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", "")
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	if u.Skills == nil {
		u.Skills = []string{}
	}
	return u, nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) FindByGithubID(ctx context.Context, githubID string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE github_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, githubID))
}

func (r *postgresUserRepo) FindPublic(ctx context.Context, field user.LookupField, term string) (*user.User, error) {
	builder := psqlUser.Select(userColumns).
		From("users").
		Where(sq.Eq{"is_profile_public": true}).
		Limit(1)

	switch field {
	case user.LookupByGithubUsername:
		builder = builder.Where(sq.Eq{"github_username": term})
	case user.LookupByUsername:
		builder = builder.Where(sq.Eq{"username": term})
	case user.LookupByEmailPrefix:
		escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
		builder = builder.Where(sq.ILike{"email": escaped + "%"})
	default:
		return nil, apperror.NewInvalidInput("unknown lookup field", nil)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build public user query", err)
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *postgresUserRepo) Upsert(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, github_id, github_username, github_url, github_token, username,
			name, email, bio, avatar_url, location, is_profile_public, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (github_id) DO UPDATE SET
			github_username = EXCLUDED.github_username,
			github_url = EXCLUDED.github_url,
			github_token = EXCLUDED.github_token,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		u.ID, u.GithubID, u.GithubUsername, u.GithubURL, u.GithubToken, u.Username,
		u.Name, u.Email, u.Bio, u.AvatarURL, u.Location, u.IsProfilePublic,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("user", "github_username", u.GithubUsername)
		}
		return apperror.NewInternal("failed to upsert user", err)
	}
	return nil
}

func (r *postgresUserRepo) UpdateProfile(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			username = $2, name = $3, email = $4, bio = $5, avatar_url = $6,
			location = $7, phone = $8, job_title = $9, field_of_work = $10,
			experience = $11, education = $12, skills = $13, website = $14,
			linkedin = $15, twitter = $16, instagram = $17, youtube = $18,
			facebook = $19, cv_url = $20, is_profile_public = $21, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		u.ID, u.Username, u.Name, u.Email, u.Bio, u.AvatarURL,
		u.Location, u.Phone, u.JobTitle, u.FieldOfWork,
		u.Experience, u.Education, u.Skills, u.Website,
		u.Linkedin, u.Twitter, u.Instagram, u.Youtube,
		u.Facebook, u.CVURL, u.IsProfilePublic,
	)
	if err != nil {
		return apperror.NewInternal("failed to update user profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", u.ID.String())
	}
	return nil
}

func (r *postgresUserRepo) UpdateDeployedSiteURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE users SET deployed_site_url = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		return apperror.NewInternal("failed to update deployed site url", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", id.String())
	}
	return nil
}
