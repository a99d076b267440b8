package postgres

import (
	"context"
	"errors"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *voteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) Delete(ctx context.Context, userID, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Delete(&domain.Vote{}).Error
}

func (r *voteRepository) Exists(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	var vote domain.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *voteRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

func (r *voteRepository) CountByTeams(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	type countResult struct {
		TeamID uuid.UUID
		Count  int64
	}

	var results []countResult
	err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Select("team_id, COUNT(*) as count").
		Where("team_id IN ?", teamIDs).
		Group("team_id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(results))
	for _, res := range results {
		counts[res.TeamID] = res.Count
	}
	return counts, nil
}

func (r *voteRepository) VotedTeams(ctx context.Context, userID uuid.UUID, teamIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	var votes []domain.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND team_id IN ?", userID, teamIDs).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	voted := make(map[uuid.UUID]bool, len(votes))
	for _, vote := range votes {
		voted[vote.TeamID] = true
	}
	return voted, nil
}
