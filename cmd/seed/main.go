package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/alexdoyle/rivals-team-builder/internal/config"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository/postgres"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Seeds the hero roster and its synergy/counter relations. Safe to run
// repeatedly: heroes upsert by name and relations are rebuilt wholesale.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	log.Printf("Seeding %d heroes...", len(heroSeeds))

	// First pass: upsert heroes and remember their ids by name.
	idsByName := make(map[string]uuid.UUID, len(heroSeeds))
	for _, seed := range heroSeeds {
		tags, err := json.Marshal(seed.Tags)
		if err != nil {
			log.Fatalf("failed to encode tags for %s: %v", seed.Name, err)
		}

		hero := &domain.Hero{
			Name:        seed.Name,
			Role:        domain.HeroRole(seed.Role),
			Description: seed.Description,
			Difficulty:  seed.Difficulty,
			Tags:        datatypes.JSON(tags),
		}
		if err := repos.Hero.Upsert(ctx, hero); err != nil {
			log.Fatalf("failed to upsert %s: %v", seed.Name, err)
		}

		stored, err := repos.Hero.GetByName(ctx, seed.Name)
		if err != nil {
			log.Fatalf("failed to reload %s: %v", seed.Name, err)
		}
		idsByName[seed.Name] = stored.ID
	}

	// Second pass: rebuild relations now that every hero exists.
	// Names that don't resolve are skipped, same as a dangling entry
	// in the dataset.
	for _, seed := range heroSeeds {
		heroID := idsByName[seed.Name]
		if err := repos.Hero.ReplaceSynergies(ctx, heroID, resolve(idsByName, seed.Synergies)); err != nil {
			log.Fatalf("failed to set synergies for %s: %v", seed.Name, err)
		}
		if err := repos.Hero.ReplaceCounters(ctx, heroID, resolve(idsByName, seed.Counters)); err != nil {
			log.Fatalf("failed to set counters for %s: %v", seed.Name, err)
		}
	}

	log.Printf("Seeded %d heroes", len(heroSeeds))
}

func resolve(idsByName map[string]uuid.UUID, names []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		if id, ok := idsByName[name]; ok {
			ids = append(ids, id)
		} else {
			log.Printf("WARN unknown hero in relation list: %s", name)
		}
	}
	return ids
}
