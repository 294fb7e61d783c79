package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/azizcs/portfolio-maker/internal/application/service"
	"github.com/azizcs/portfolio-maker/internal/domain/user"
	"github.com/azizcs/portfolio-maker/pkg/apperror"
	"github.com/azizcs/portfolio-maker/pkg/auth"
	"github.com/azizcs/portfolio-maker/pkg/logger"
)

const stateLifespan = 10 * time.Minute

// StateStore keeps one-time OAuth state values between the redirect to GitHub
// and the callback.
type StateStore interface {
	SaveState(ctx context.Context, state string, ttl time.Duration) error
	// ConsumeState reports whether the state was issued by us and deletes it,
	// so a state value can authorize at most one callback.
	ConsumeState(ctx context.Context, state string) (bool, error)
}

type GitHubLoginUseCase struct {
	userRepo user.Repository
	identity service.IdentityProvider
	states   StateStore
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewGitHubLoginUseCase(
	repo user.Repository,
	identity service.IdentityProvider,
	states StateStore,
	jwtSvc *auth.JWTService,
	log logger.Logger,
) *GitHubLoginUseCase {
	return &GitHubLoginUseCase{
		userRepo: repo,
		identity: identity,
		states:   states,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

var tracer = otel.Tracer("auth_usecase")

type BeginLoginOutput struct {
	AuthURL string
}

func (uc *GitHubLoginUseCase) ExecuteBeginLogin(ctx context.Context) (*BeginLoginOutput, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, apperror.NewInternal("failed to generate oauth state", err)
	}
	state := hex.EncodeToString(buf)

	if err := uc.states.SaveState(ctx, state, stateLifespan); err != nil {
		return nil, apperror.NewInternal("failed to store oauth state", err)
	}

	return &BeginLoginOutput{AuthURL: uc.identity.AuthCodeURL(state)}, nil
}

type CompleteLoginInput struct {
	Code  string
	State string
}

type CompleteLoginOutput struct {
	AccessToken string
	User        *user.User
}

func (uc *GitHubLoginUseCase) ExecuteCompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginOutput, error) {

	ctx, span := tracer.Start(ctx, "ExecuteCompleteLogin")
	defer span.End()

	if input.Code == "" || input.State == "" {
		return nil, apperror.NewInvalidInput("code and state are required", nil)
	}

	ok, err := uc.states.ConsumeState(ctx, input.State)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to check oauth state", err)
	}
	if !ok {
		err := apperror.NewUnauthorized("unknown or expired oauth state", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.identity.Exchange(ctx, input.Code)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	identity, err := uc.identity.FetchUser(ctx, token)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	u, err := uc.upsertFromIdentity(ctx, identity, token)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	accessToken, err := uc.jwtSvc.GenerateToken(u.ID, u.GithubUsername)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &CompleteLoginOutput{AccessToken: accessToken, User: u}, nil
}

// upsertFromIdentity creates the user row on first sign-in and refreshes the
// GitHub identity fields (including the stored token) on every later one.
// Profile fields the user edited are not overwritten.
func (uc *GitHubLoginUseCase) upsertFromIdentity(ctx context.Context, identity *service.GitHubIdentity, token string) (*user.User, error) {
	name := identity.Name
	if name == "" {
		name = identity.Login
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:              uuid.New(),
		GithubID:        identity.ID,
		GithubUsername:  identity.Login,
		GithubToken:     &token,
		Name:            name,
		Email:           identity.Email,
		IsProfilePublic: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if identity.HTMLURL != "" {
		u.GithubURL = &identity.HTMLURL
	}
	if identity.Bio != "" {
		u.Bio = &identity.Bio
	}
	if identity.AvatarURL != "" {
		u.AvatarURL = &identity.AvatarURL
	}
	if identity.Location != "" {
		u.Location = &identity.Location
	}

	if err := uc.userRepo.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("upsert user on login failed: %w", err)
	}

	// The upsert returns the canonical id; reload so the caller sees the
	// saved profile rather than the identity defaults.
	current, err := uc.userRepo.FindByGithubID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return u, nil
		}
		return nil, fmt.Errorf("reload user after login failed: %w", err)
	}
	return current, nil
}
