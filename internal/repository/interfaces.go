package repository

import (
	"context"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type HeroRepository interface {
	Upsert(ctx context.Context, hero *domain.Hero) error
	GetAll(ctx context.Context, search string) ([]*domain.Hero, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hero, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Hero, error)
	GetByName(ctx context.Context, name string) (*domain.Hero, error)
	GetByRole(ctx context.Context, role domain.HeroRole) ([]*domain.Hero, error)
	// ReplaceSynergies and ReplaceCounters rebuild one hero's outgoing
	// relation edges wholesale; the seed command is their only writer.
	ReplaceSynergies(ctx context.Context, heroID uuid.UUID, otherIDs []uuid.UUID) error
	ReplaceCounters(ctx context.Context, heroID uuid.UUID, otherIDs []uuid.UUID) error
	GetSynergyEdges(ctx context.Context) ([]*domain.HeroSynergy, error)
	GetCounterEdges(ctx context.Context) ([]*domain.HeroCounter, error)
}

// TeamListFilter narrows and orders team listings.
type TeamListFilter struct {
	OwnerID  *uuid.UUID
	Ordering string // "newest" (default) or "popular"
}

type TeamRepository interface {
	// Create persists the team and its six members in one
	// transaction: either everything lands or nothing does.
	Create(ctx context.Context, team *domain.Team, members []domain.TeamMember) error
	// Update saves team attributes; a non-nil members slice replaces
	// the whole roster (delete all, recreate) in the same transaction.
	Update(ctx context.Context, team *domain.Team, members []domain.TeamMember) error
	GetBySlug(ctx context.Context, slug string) (*domain.Team, error)
	List(ctx context.Context, filter TeamListFilter) ([]*domain.Team, error)
	// IncrementViews bumps the view counter in place. The count is
	// approximate under concurrent reads.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VoteRepository interface {
	Create(ctx context.Context, vote *domain.Vote) error
	Delete(ctx context.Context, userID, teamID uuid.UUID) error
	Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
	CountByTeams(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	VotedTeams(ctx context.Context, userID uuid.UUID, teamIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Comment, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Hero    HeroRepository
	Team    TeamRepository
	Vote    VoteRepository
	Comment CommentRepository
}
