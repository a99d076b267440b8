package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Team struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID          uuid.UUID      `json:"ownerId" gorm:"type:uuid;not null;index"`
	Name             string         `json:"name" gorm:"not null"`
	Description      string         `json:"description"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;not null"` // immutable once set
	Views            int64          `json:"views" gorm:"not null;default:0"`
	CompositionScore int            `json:"compositionScore" gorm:"not null;default:0"` // 0-100
	AnalysisData     datatypes.JSON `json:"analysisData" gorm:"type:jsonb"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`

	// Relations
	Owner   *User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember occupies one of the six roster slots. Members have no
// independent lifecycle: a roster edit deletes and recreates all six.
type TeamMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID   uuid.UUID `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_team_position;uniqueIndex:idx_team_hero"`
	HeroID   uuid.UUID `json:"heroId" gorm:"type:uuid;not null;uniqueIndex:idx_team_hero"`
	Position int       `json:"position" gorm:"not null;uniqueIndex:idx_team_position;check:position >= 1 AND position <= 6"`

	Hero *Hero `json:"hero,omitempty" gorm:"foreignKey:HeroID"`
	Team *Team `json:"-" gorm:"foreignKey:TeamID"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
