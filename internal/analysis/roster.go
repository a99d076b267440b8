package analysis

import (
	"fmt"

	"github.com/google/uuid"
)

// TeamSize is the number of roster slots on every team.
const TeamSize = 6

// RosterSlot is one (hero, position) assignment in a candidate roster.
type RosterSlot struct {
	HeroID   uuid.UUID `json:"heroId"`
	Position int       `json:"position"`
}

// ValidationError is a client-fixable problem with a submitted roster.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidateRoster checks the shape of a candidate roster: exactly six
// slots, no duplicate positions, no duplicate heroes. It does not
// range-check position values or verify that hero ids exist; the
// storage layer's constraints cover both.
func ValidateRoster(roster []RosterSlot) error {
	if len(roster) != TeamSize {
		return validationErrorf("team must include exactly %d members, got %d", TeamSize, len(roster))
	}

	positions := make(map[int]struct{}, TeamSize)
	heroes := make(map[uuid.UUID]struct{}, TeamSize)
	for _, slot := range roster {
		if _, dup := positions[slot.Position]; dup {
			return validationErrorf("duplicate slot position %d", slot.Position)
		}
		positions[slot.Position] = struct{}{}

		if _, dup := heroes[slot.HeroID]; dup {
			return validationErrorf("hero %s can only appear once per team", slot.HeroID)
		}
		heroes[slot.HeroID] = struct{}{}
	}

	return nil
}
