package postgres

import (
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Hero{},
		&domain.HeroSynergy{},
		&domain.HeroCounter{},
		&domain.Team{},
		&domain.TeamMember{},
		&domain.Vote{},
		&domain.Comment{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Hero:    NewHeroRepository(db),
		Team:    NewTeamRepository(db),
		Vote:    NewVoteRepository(db),
		Comment: NewCommentRepository(db),
	}
}
