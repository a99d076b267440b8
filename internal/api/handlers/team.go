package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexdoyle/rivals-team-builder/internal/analysis"
	"github.com/alexdoyle/rivals-team-builder/internal/api/middleware"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
	"github.com/alexdoyle/rivals-team-builder/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type TeamMemberRequest struct {
	HeroID   uuid.UUID `json:"heroId"`
	Position int       `json:"position"`
}

type CreateTeamRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Members     []TeamMemberRequest `json:"members"`
}

// UpdateTeamRequest is a partial edit: absent fields stay untouched.
type UpdateTeamRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Members     *[]TeamMemberRequest `json:"members"`
}

type TeamMemberResponse struct {
	ID       uuid.UUID          `json:"id"`
	Hero     domain.HeroSummary `json:"hero"`
	Position int                `json:"position"`
}

type TeamResponse struct {
	ID               uuid.UUID            `json:"id"`
	Slug             string               `json:"slug"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	Owner            domain.UserSummary   `json:"owner"`
	Members          []TeamMemberResponse `json:"members"`
	MemberCount      int                  `json:"memberCount"`
	CompositionScore int                  `json:"compositionScore"`
	AnalysisData     json.RawMessage      `json:"analysisData,omitempty"`
	UpvoteCount      int64                `json:"upvoteCount"`
	UserHasVoted     bool                 `json:"userHasVoted"`
	Views            int64                `json:"views"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type VoteResponse struct {
	Voted   bool  `json:"voted"`
	Upvotes int64 `json:"upvotes"`
}

// GetAll handles GET /api/v1/teams?owner=&ordering=
func (h *TeamHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := repository.TeamListFilter{Ordering: r.URL.Query().Get("ordering")}
	if owner := r.URL.Query().Get("owner"); owner != "" {
		ownerID, err := uuid.Parse(owner)
		if err != nil {
			http.Error(w, "Invalid owner ID", http.StatusBadRequest)
			return
		}
		filter.OwnerID = &ownerID
	}

	h.listTeams(w, r, filter)
}

// GetMine handles GET /api/v1/users/me/teams
func (h *TeamHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	filter := repository.TeamListFilter{
		OwnerID:  &userID,
		Ordering: r.URL.Query().Get("ordering"),
	}
	h.listTeams(w, r, filter)
}

func (h *TeamHandler) listTeams(w http.ResponseWriter, r *http.Request, filter repository.TeamListFilter) {
	teams, err := h.teamService.ListTeams(r.Context(), filter)
	if err != nil {
		respondError(w, r, "TeamHandler.listTeams", err)
		return
	}

	teamIDs := make([]uuid.UUID, len(teams))
	for i, team := range teams {
		teamIDs[i] = team.ID
	}
	var viewerID *uuid.UUID
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		viewerID = &userID
	}
	counts, voted, err := h.teamService.TeamMeta(r.Context(), teamIDs, viewerID)
	if err != nil {
		respondError(w, r, "TeamHandler.listTeams", err)
		return
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = toTeamResponse(team, counts[team.ID], voted[team.ID], false)
	}
	writeJSON(w, http.StatusOK, responses)
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), userID, service.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     toSlots(req.Members),
	})
	if err != nil {
		respondError(w, r, "TeamHandler.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeamResponse(team, 0, false, true))
}

// Get handles GET /api/v1/teams/{slug}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, "TeamHandler.Get", err)
		return
	}

	var viewerID *uuid.UUID
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		viewerID = &userID
	}
	counts, voted, err := h.teamService.TeamMeta(r.Context(), []uuid.UUID{team.ID}, viewerID)
	if err != nil {
		respondError(w, r, "TeamHandler.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(team, counts[team.ID], voted[team.ID], true))
}

// Update handles PATCH /api/v1/teams/{slug}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	input := service.UpdateTeamInput{Name: req.Name, Description: req.Description}
	if req.Name != nil && *req.Name == "" {
		http.Error(w, "Name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Members != nil {
		input.Members = toSlots(*req.Members)
	}

	team, err := h.teamService.UpdateTeam(r.Context(), userID, chi.URLParam(r, "slug"), input)
	if err != nil {
		respondError(w, r, "TeamHandler.Update", err)
		return
	}

	counts, voted, err := h.teamService.TeamMeta(r.Context(), []uuid.UUID{team.ID}, &userID)
	if err != nil {
		respondError(w, r, "TeamHandler.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamResponse(team, counts[team.ID], voted[team.ID], true))
}

// Delete handles DELETE /api/v1/teams/{slug}
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), userID, chi.URLParam(r, "slug")); err != nil {
		respondError(w, r, "TeamHandler.Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Vote handles POST /api/v1/teams/{slug}/vote
func (h *TeamHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	voted, upvotes, err := h.teamService.ToggleVote(r.Context(), userID, chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, "TeamHandler.Vote", err)
		return
	}
	writeJSON(w, http.StatusOK, VoteResponse{Voted: voted, Upvotes: upvotes})
}

// GetComments handles GET /api/v1/teams/{slug}/comments
func (h *TeamHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.teamService.ListComments(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, "TeamHandler.GetComments", err)
		return
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /api/v1/teams/{slug}/comments. The same
// comment shape goes to the HTTP caller and to the live subscribers.
func (h *TeamHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.teamService.CreateComment(r.Context(), userID, chi.URLParam(r, "slug"), req.Text)
	if err != nil {
		respondError(w, r, "TeamHandler.CreateComment", err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func toSlots(members []TeamMemberRequest) []analysis.RosterSlot {
	slots := make([]analysis.RosterSlot, len(members))
	for i, m := range members {
		slots[i] = analysis.RosterSlot{HeroID: m.HeroID, Position: m.Position}
	}
	return slots
}

func toTeamResponse(team *domain.Team, upvotes int64, voted bool, withAnalysis bool) TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i, member := range team.Members {
		resp := TeamMemberResponse{ID: member.ID, Position: member.Position}
		if member.Hero != nil {
			resp.Hero = member.Hero.Summary()
		}
		members[i] = resp
	}

	response := TeamResponse{
		ID:               team.ID,
		Slug:             team.Slug,
		Name:             team.Name,
		Description:      team.Description,
		Members:          members,
		MemberCount:      len(members),
		CompositionScore: team.CompositionScore,
		UpvoteCount:      upvotes,
		UserHasVoted:     voted,
		Views:            team.Views,
		CreatedAt:        team.CreatedAt,
		UpdatedAt:        team.UpdatedAt,
	}
	if team.Owner != nil {
		response.Owner = team.Owner.Summary()
	}
	if withAnalysis && len(team.AnalysisData) > 0 {
		response.AnalysisData = json.RawMessage(team.AnalysisData)
	}
	return response
}
