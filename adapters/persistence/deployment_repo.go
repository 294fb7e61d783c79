package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azizcs/portfolio-maker/internal/domain/deployment"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

type postgresDeploymentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDeploymentRepo(db *pgxpool.Pool, logger logger.Logger) deployment.Repository {
	return &postgresDeploymentRepo{db: db, logger: logger}
}

var psqlDeployment = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresDeploymentRepo) Save(ctx context.Context, d *deployment.Deployment) error {
	query := `
		INSERT INTO deployments (id, user_id, repo_name, repo_url, page_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.UserID, d.RepoName, d.RepoURL, d.PageURL, d.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save deployment", err)
	}
	return nil
}

func (r *postgresDeploymentRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*deployment.Deployment, error) {
	builder := psqlDeployment.Select("id, user_id, repo_name, repo_url, page_url, created_at").
		From("deployments").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list deployments query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query deployments", err)
	}
	defer rows.Close()

	deployments := make([]*deployment.Deployment, 0)
	for rows.Next() {
		d := &deployment.Deployment{}
		if err := scanDeployment(rows, d); err != nil {
			return nil, err
		}
		deployments = append(deployments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating deployment rows", err)
	}
	return deployments, nil
}

func scanDeployment(row pgx.Row, d *deployment.Deployment) error {
	err := row.Scan(&d.ID, &d.UserID, &d.RepoName, &d.RepoURL, &d.PageURL, &d.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to scan deployment row", err)
	}
	return nil
}
