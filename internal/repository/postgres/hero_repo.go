package postgres

import (
	"context"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Upsert(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"role", "description", "image_url", "banner_url",
			"video_url", "tips", "difficulty", "tags", "updated_at",
		}),
	}).Create(hero).Error
}

func (r *heroRepository) GetAll(ctx context.Context, search string) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	q := r.db.WithContext(ctx).Order("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if err := q.Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) GetByRole(ctx context.Context, role domain.HeroRole) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("name ASC").Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) ReplaceSynergies(ctx context.Context, heroID uuid.UUID, otherIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hero_id = ?", heroID).Delete(&domain.HeroSynergy{}).Error; err != nil {
			return err
		}
		if len(otherIDs) == 0 {
			return nil
		}
		edges := make([]domain.HeroSynergy, 0, len(otherIDs))
		for _, other := range otherIDs {
			edges = append(edges, domain.HeroSynergy{HeroID: heroID, OtherID: other})
		}
		return tx.Create(&edges).Error
	})
}

func (r *heroRepository) ReplaceCounters(ctx context.Context, heroID uuid.UUID, otherIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hero_id = ?", heroID).Delete(&domain.HeroCounter{}).Error; err != nil {
			return err
		}
		if len(otherIDs) == 0 {
			return nil
		}
		edges := make([]domain.HeroCounter, 0, len(otherIDs))
		for _, other := range otherIDs {
			edges = append(edges, domain.HeroCounter{HeroID: heroID, OtherID: other})
		}
		return tx.Create(&edges).Error
	})
}

func (r *heroRepository) GetSynergyEdges(ctx context.Context) ([]*domain.HeroSynergy, error) {
	var edges []*domain.HeroSynergy
	err := r.db.WithContext(ctx).Preload("Hero").Preload("Other").Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (r *heroRepository) GetCounterEdges(ctx context.Context) ([]*domain.HeroCounter, error) {
	var edges []*domain.HeroCounter
	err := r.db.WithContext(ctx).Preload("Hero").Preload("Other").Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}
