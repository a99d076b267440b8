package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HeroHandler struct {
	heroService *service.HeroService
}

func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

// HeroListItem is the roster-browsing shape: relations collapse to
// plain names so the list stays light.
type HeroListItem struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Role          domain.HeroRole `json:"role"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl"`
	BannerURL     string          `json:"bannerUrl"`
	Difficulty    int             `json:"difficulty"`
	PlaystyleTags json.RawMessage `json:"playstyleTags"`
	Synergies     []string        `json:"synergies"`
	Counters      []string        `json:"counters"`
}

type HeroDetailResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Role          domain.HeroRole      `json:"role"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"imageUrl"`
	BannerURL     string               `json:"bannerUrl"`
	VideoURL      string               `json:"videoUrl"`
	Tips          string               `json:"tips"`
	Difficulty    int                  `json:"difficulty"`
	PlaystyleTags json.RawMessage      `json:"playstyleTags"`
	Synergies     []domain.HeroSummary `json:"synergies"`
	Counters      []domain.HeroSummary `json:"counters"`
	CounteredBy   []domain.HeroSummary `json:"counteredBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// GetAll handles GET /api/v1/heroes?search=
func (h *HeroHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.ListHeroes(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, r, "HeroHandler.GetAll", err)
		return
	}
	index, err := h.heroService.Relations(r.Context())
	if err != nil {
		respondError(w, r, "HeroHandler.GetAll", err)
		return
	}

	items := make([]HeroListItem, len(heroes))
	for i, hero := range heroes {
		items[i] = HeroListItem{
			ID:            hero.ID,
			Name:          hero.Name,
			Role:          hero.Role,
			Description:   hero.Description,
			ImageURL:      hero.ImageURL,
			BannerURL:     hero.BannerURL,
			Difficulty:    hero.Difficulty,
			PlaystyleTags: tagsJSON(hero),
			Synergies:     summaryNames(index.Synergies[hero.ID]),
			Counters:      summaryNames(index.Counters[hero.ID]),
		}
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/heroes/{id}
func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid hero ID", http.StatusBadRequest)
		return
	}

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		respondError(w, r, "HeroHandler.Get", err)
		return
	}
	index, err := h.heroService.Relations(r.Context())
	if err != nil {
		respondError(w, r, "HeroHandler.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, HeroDetailResponse{
		ID:            hero.ID,
		Name:          hero.Name,
		Role:          hero.Role,
		Description:   hero.Description,
		ImageURL:      hero.ImageURL,
		BannerURL:     hero.BannerURL,
		VideoURL:      hero.VideoURL,
		Tips:          hero.Tips,
		Difficulty:    hero.Difficulty,
		PlaystyleTags: tagsJSON(hero),
		Synergies:     orEmpty(index.Synergies[hero.ID]),
		Counters:      orEmpty(index.Counters[hero.ID]),
		CounteredBy:   orEmpty(index.CounteredBy[hero.ID]),
		CreatedAt:     hero.CreatedAt,
		UpdatedAt:     hero.UpdatedAt,
	})
}

// GetByRole handles GET /api/v1/heroes/role/{role}
func (h *HeroHandler) GetByRole(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.GetHeroesByRole(r.Context(), chi.URLParam(r, "role"))
	if err != nil {
		respondError(w, r, "HeroHandler.GetByRole", err)
		return
	}

	summaries := make([]domain.HeroSummary, len(heroes))
	for i, hero := range heroes {
		summaries[i] = hero.Summary()
	}
	writeJSON(w, http.StatusOK, summaries)
}

func tagsJSON(hero *domain.Hero) json.RawMessage {
	if len(hero.Tags) == 0 {
		return json.RawMessage("[]")
	}
	return json.RawMessage(hero.Tags)
}

func summaryNames(summaries []domain.HeroSummary) []string {
	names := make([]string, len(summaries))
	for i, summary := range summaries {
		names[i] = summary.Name
	}
	return names
}

func orEmpty(summaries []domain.HeroSummary) []domain.HeroSummary {
	if summaries == nil {
		return []domain.HeroSummary{}
	}
	return summaries
}
