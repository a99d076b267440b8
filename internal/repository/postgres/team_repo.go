package postgres

import (
	"context"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team, members []domain.TeamMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].TeamID = team.ID
		}
		return tx.Create(&members).Error
	})
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team, members []domain.TeamMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members", "Owner").Save(team).Error; err != nil {
			return err
		}
		if members == nil {
			return nil
		}
		// Roster edits replace all six slots wholesale.
		if err := tx.Where("team_id = ?", team.ID).Delete(&domain.TeamMember{}).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].TeamID = team.ID
		}
		return tx.Create(&members).Error
	})
}

func (r *teamRepository) GetBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Members.Hero").
		First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context, filter repository.TeamListFilter) ([]*domain.Team, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Preload("Owner").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Members.Hero")

	if filter.OwnerID != nil {
		q = q.Where("teams.owner_id = ?", *filter.OwnerID)
	}

	switch filter.Ordering {
	case "popular":
		// Vote count first, then views, then recency.
		q = q.
			Select("teams.*, COUNT(votes.id) AS vote_count").
			Joins("LEFT JOIN votes ON votes.team_id = teams.id").
			Group("teams.id").
			Order("vote_count DESC").
			Order("teams.views DESC").
			Order("teams.created_at DESC")
	default:
		q = q.Order("teams.created_at DESC")
	}

	var teams []*domain.Team
	if err := q.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&domain.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&domain.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Team{}, "id = ?", id).Error
	})
}
