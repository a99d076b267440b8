package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/alexdoyle/rivals-team-builder/internal/analysis"
	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps service errors onto HTTP statuses. Validation
// problems and missing entities surface with their message; anything
// unexpected is logged with the request id and answered generically.
func respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *analysis.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Reason, http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidRole):
		http.Error(w, "Invalid role", http.StatusBadRequest)
	case errors.Is(err, domain.ErrTeamNotFound):
		http.Error(w, "Team not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrHeroNotFound):
		http.Error(w, "Hero not found", http.StatusNotFound)
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrNotTeamOwner):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		log.Printf("ERROR [%s] requestID=%s: %v", op, chiMiddleware.GetReqID(r.Context()), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
