package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/alexdoyle/rivals-team-builder/internal/analysis"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	"github.com/google/uuid"
)

// RelationIndex is the wholesale-cached adjacency of the directed
// synergy/counter graph, keyed by hero id. CounteredBy is the reverse
// index over counter edges, not a separate stored relation.
type RelationIndex struct {
	Synergies   map[uuid.UUID][]domain.HeroSummary
	Counters    map[uuid.UUID][]domain.HeroSummary
	CounteredBy map[uuid.UUID][]domain.HeroSummary
}

type HeroService struct {
	heroRepo repository.HeroRepository

	mu    sync.RWMutex
	index *RelationIndex
}

func NewHeroService(heroRepo repository.HeroRepository) *HeroService {
	return &HeroService{heroRepo: heroRepo}
}

func (s *HeroService) ListHeroes(ctx context.Context, search string) ([]*domain.Hero, error) {
	return s.heroRepo.GetAll(ctx, search)
}

func (s *HeroService) GetHero(ctx context.Context, id uuid.UUID) (*domain.Hero, error) {
	return s.heroRepo.GetByID(ctx, id)
}

func (s *HeroService) GetHeroesByRole(ctx context.Context, role string) ([]*domain.Hero, error) {
	normalized := strings.ToUpper(role)
	if !domain.ValidRole(normalized) {
		return nil, domain.ErrInvalidRole
	}
	return s.heroRepo.GetByRole(ctx, domain.HeroRole(normalized))
}

// Relations returns the relation index, loading it on first use. Hero
// data is only written by the offline seed command, so the cache lives
// for the process lifetime; Invalidate drops it after reseeding.
func (s *HeroService) Relations(ctx context.Context) (*RelationIndex, error) {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	if index != nil {
		return index, nil
	}

	synergyEdges, err := s.heroRepo.GetSynergyEdges(ctx)
	if err != nil {
		return nil, err
	}
	counterEdges, err := s.heroRepo.GetCounterEdges(ctx)
	if err != nil {
		return nil, err
	}

	built := &RelationIndex{
		Synergies:   make(map[uuid.UUID][]domain.HeroSummary),
		Counters:    make(map[uuid.UUID][]domain.HeroSummary),
		CounteredBy: make(map[uuid.UUID][]domain.HeroSummary),
	}
	for _, edge := range synergyEdges {
		if edge.Other == nil {
			continue
		}
		built.Synergies[edge.HeroID] = append(built.Synergies[edge.HeroID], edge.Other.Summary())
	}
	for _, edge := range counterEdges {
		if edge.Other == nil {
			continue
		}
		built.Counters[edge.HeroID] = append(built.Counters[edge.HeroID], edge.Other.Summary())
	}

	// countered_by(X) = all heroes whose counters include X.
	heroesByID := make(map[uuid.UUID]domain.HeroSummary)
	for _, edge := range counterEdges {
		if edge.Hero != nil {
			heroesByID[edge.HeroID] = edge.Hero.Summary()
		}
	}
	for _, edge := range counterEdges {
		attacker, ok := heroesByID[edge.HeroID]
		if !ok {
			continue
		}
		built.CounteredBy[edge.OtherID] = append(built.CounteredBy[edge.OtherID], attacker)
	}

	for _, adjacency := range []map[uuid.UUID][]domain.HeroSummary{
		built.Synergies, built.Counters, built.CounteredBy,
	} {
		for _, summaries := range adjacency {
			sort.Slice(summaries, func(i, j int) bool {
				return summaries[i].Name < summaries[j].Name
			})
		}
	}

	s.mu.Lock()
	s.index = built
	s.mu.Unlock()
	return built, nil
}

// Invalidate drops the cached relation index.
func (s *HeroService) Invalidate() {
	s.mu.Lock()
	s.index = nil
	s.mu.Unlock()
}

// HeroData assembles the scorer input for a set of roster heroes.
func (s *HeroService) HeroData(ctx context.Context, heroes []*domain.Hero) ([]analysis.HeroData, error) {
	index, err := s.Relations(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]analysis.HeroData, len(heroes))
	for i, hero := range heroes {
		data[i] = analysis.HeroData{
			ID:          hero.ID,
			Name:        hero.Name,
			Role:        hero.Role,
			Synergies:   toRefs(index.Synergies[hero.ID]),
			Counters:    toRefs(index.Counters[hero.ID]),
			CounteredBy: toRefs(index.CounteredBy[hero.ID]),
		}
	}
	return data, nil
}

func toRefs(summaries []domain.HeroSummary) []analysis.HeroRef {
	refs := make([]analysis.HeroRef, len(summaries))
	for i, summary := range summaries {
		refs[i] = analysis.HeroRef{ID: summary.ID, Name: summary.Name}
	}
	return refs
}
