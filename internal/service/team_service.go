package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/alexdoyle/rivals-team-builder/internal/analysis"
	"github.com/alexdoyle/rivals-team-builder/internal/broadcast"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	slugNameLimit  = 30
	slugSuffixLen  = 8
	slugAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
	maxCommentSize = 4000
)

var slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)

type TeamService struct {
	teamRepo    repository.TeamRepository
	voteRepo    repository.VoteRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	heroService *HeroService
	layer       broadcast.Layer
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	voteRepo repository.VoteRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	heroService *HeroService,
	layer broadcast.Layer,
) *TeamService {
	return &TeamService{
		teamRepo:    teamRepo,
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		heroService: heroService,
		layer:       layer,
	}
}

type CreateTeamInput struct {
	Name        string
	Description string
	Members     []analysis.RosterSlot
}

// UpdateTeamInput carries a partial edit: nil fields stay as they are.
type UpdateTeamInput struct {
	Name        *string
	Description *string
	Members     []analysis.RosterSlot // nil leaves the roster untouched
}

func (s *TeamService) CreateTeam(ctx context.Context, ownerID uuid.UUID, input CreateTeamInput) (*domain.Team, error) {
	if err := analysis.ValidateRoster(input.Members); err != nil {
		return nil, err
	}

	score, payload, err := s.scoreRoster(ctx, input.Members)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             input.Name,
		Description:      input.Description,
		Slug:             generateSlug(input.Name),
		CompositionScore: score,
		AnalysisData:     payload,
	}

	members := make([]domain.TeamMember, len(input.Members))
	for i, slot := range input.Members {
		members[i] = domain.TeamMember{
			ID:       uuid.New(),
			HeroID:   slot.HeroID,
			Position: slot.Position,
		}
	}

	if err := s.teamRepo.Create(ctx, team, members); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}

	return s.teamRepo.GetBySlug(ctx, team.Slug)
}

func (s *TeamService) UpdateTeam(ctx context.Context, userID uuid.UUID, slug string, input UpdateTeamInput) (*domain.Team, error) {
	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != userID {
		return nil, domain.ErrNotTeamOwner
	}

	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.Description != nil {
		team.Description = *input.Description
	}
	// The slug never changes: shared links stay valid across renames.

	var members []domain.TeamMember
	if input.Members != nil {
		if err := analysis.ValidateRoster(input.Members); err != nil {
			return nil, err
		}
		score, payload, err := s.scoreRoster(ctx, input.Members)
		if err != nil {
			return nil, err
		}
		team.CompositionScore = score
		team.AnalysisData = payload

		members = make([]domain.TeamMember, len(input.Members))
		for i, slot := range input.Members {
			members[i] = domain.TeamMember{
				ID:       uuid.New(),
				HeroID:   slot.HeroID,
				Position: slot.Position,
			}
		}
	}

	if err := s.teamRepo.Update(ctx, team, members); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}

	return s.teamRepo.GetBySlug(ctx, slug)
}

// GetTeam fetches a team by slug and bumps its view counter. The
// counter is advisory: concurrent fetches may lose an increment and
// that is fine.
func (s *TeamService) GetTeam(ctx context.Context, slug string) (*domain.Team, error) {
	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.teamRepo.IncrementViews(ctx, team.ID); err != nil {
		return nil, err
	}
	team.Views++
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context, filter repository.TeamListFilter) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx, filter)
}

func (s *TeamService) DeleteTeam(ctx context.Context, userID uuid.UUID, slug string) error {
	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if team.OwnerID != userID {
		return domain.ErrNotTeamOwner
	}
	return s.teamRepo.Delete(ctx, team.ID)
}

// ToggleVote flips the (user, team) vote: absent creates, present
// deletes. A unique-constraint race on create means the vote already
// landed, so it is treated as present and toggled off. The returned
// count is always read after the mutation.
func (s *TeamService) ToggleVote(ctx context.Context, userID uuid.UUID, slug string) (bool, int64, error) {
	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return false, 0, err
	}

	exists, err := s.voteRepo.Exists(ctx, userID, team.ID)
	if err != nil {
		return false, 0, err
	}

	voted := false
	if exists {
		if err := s.voteRepo.Delete(ctx, userID, team.ID); err != nil {
			return false, 0, err
		}
	} else {
		vote := &domain.Vote{ID: uuid.New(), UserID: userID, TeamID: team.ID}
		switch err := s.voteRepo.Create(ctx, vote); {
		case err == nil:
			voted = true
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost the race against our own concurrent toggle.
			if err := s.voteRepo.Delete(ctx, userID, team.ID); err != nil {
				return false, 0, err
			}
		default:
			return false, 0, err
		}
	}

	count, err := s.voteRepo.CountByTeam(ctx, team.ID)
	if err != nil {
		return false, 0, err
	}
	return voted, count, nil
}

// TeamMeta loads vote counts for a set of teams and, when userID is
// set, which of them that user has voted for.
func (s *TeamService) TeamMeta(ctx context.Context, teamIDs []uuid.UUID, userID *uuid.UUID) (map[uuid.UUID]int64, map[uuid.UUID]bool, error) {
	if len(teamIDs) == 0 {
		return map[uuid.UUID]int64{}, map[uuid.UUID]bool{}, nil
	}

	counts, err := s.voteRepo.CountByTeams(ctx, teamIDs)
	if err != nil {
		return nil, nil, err
	}

	voted := map[uuid.UUID]bool{}
	if userID != nil {
		voted, err = s.voteRepo.VotedTeams(ctx, *userID, teamIDs)
		if err != nil {
			return nil, nil, err
		}
	}
	return counts, voted, nil
}

func (s *TeamService) ListComments(ctx context.Context, slug string) ([]*domain.Comment, error) {
	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.GetByTeam(ctx, team.ID)
}

// CreateComment persists the comment, then broadcasts it to the team's
// live group. Persistence is the source of truth: the broadcast runs
// only after the write committed, and a dead broker costs nothing but
// the live update.
func (s *TeamService) CreateComment(ctx context.Context, userID uuid.UUID, slug, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &analysis.ValidationError{Reason: "comment text is required"}
	}
	if len(text) > maxCommentSize {
		return nil, &analysis.ValidationError{Reason: "comment text is too long"}
	}

	team, err := s.getBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:     uuid.New(),
		TeamID: team.ID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.User = user

	if payload, err := json.Marshal(comment); err == nil {
		s.layer.GroupSend(ctx, broadcast.TeamCommentsGroup(slug), payload)
	}

	return comment, nil
}

func (s *TeamService) scoreRoster(ctx context.Context, roster []analysis.RosterSlot) (int, datatypes.JSON, error) {
	ids := make([]uuid.UUID, len(roster))
	for i, slot := range roster {
		ids[i] = slot.HeroID
	}

	heroes, err := s.heroService.heroRepo.GetByIDs(ctx, ids)
	if err != nil {
		return 0, nil, err
	}
	if len(heroes) != len(roster) {
		return 0, nil, domain.ErrHeroNotFound
	}

	data, err := s.heroService.HeroData(ctx, heroes)
	if err != nil {
		return 0, nil, err
	}

	result := analysis.Score(data)
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, nil, err
	}
	return result.Score, datatypes.JSON(payload), nil
}

func (s *TeamService) getBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	team, err := s.teamRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// generateSlug derives a shareable slug from the team name plus a
// random suffix. The suffix makes collisions a non-event, so create
// never has to retry or surface one.
func generateSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = slugStrip.ReplaceAllString(base, "")
	if len(base) > slugNameLimit {
		base = base[:slugNameLimit]
	}
	base = strings.Trim(base, "-")
	suffix := gonanoid.MustGenerate(slugAlphabet, slugSuffixLen)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
