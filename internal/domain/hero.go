package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HeroRole string

const (
	RoleVanguard   HeroRole = "VANGUARD"   // Tanks
	RoleDuelist    HeroRole = "DUELIST"    // DPS
	RoleStrategist HeroRole = "STRATEGIST" // Supports
)

// ValidRole reports whether s is one of the three hero roles.
func ValidRole(s string) bool {
	switch HeroRole(s) {
	case RoleVanguard, RoleDuelist, RoleStrategist:
		return true
	}
	return false
}

type Hero struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Role        HeroRole       `json:"role" gorm:"not null;index"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	BannerURL   string         `json:"bannerUrl"`
	VideoURL    string         `json:"videoUrl"`
	Tips        string         `json:"tips"`
	Difficulty  int            `json:"difficulty" gorm:"not null;default:2"` // 1-3
	Tags        datatypes.JSON `json:"playstyleTags" gorm:"type:jsonb"`      // ["dive", "burst-damage"]
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Hero) TableName() string {
	return "heroes"
}

// HeroSynergy is one directed edge of the synergy relation: Hero plays
// well with Other. Not symmetrical.
type HeroSynergy struct {
	HeroID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OtherID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Hero  *Hero `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE"`
	Other *Hero `gorm:"foreignKey:OtherID;constraint:OnDelete:CASCADE"`
}

func (HeroSynergy) TableName() string {
	return "hero_synergies"
}

// HeroCounter is one directed edge of the counter relation: Hero beats
// Other. "A counters B" does not imply "B counters A"; countered-by is
// the reverse lookup on this table.
type HeroCounter struct {
	HeroID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OtherID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Hero  *Hero `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE"`
	Other *Hero `gorm:"foreignKey:OtherID;constraint:OnDelete:CASCADE"`
}

func (HeroCounter) TableName() string {
	return "hero_counters"
}

// HeroSummary is the compact hero shape embedded in relation lists and
// team member payloads.
type HeroSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     HeroRole  `json:"role"`
	ImageURL string    `json:"imageUrl"`
}

func (h *Hero) Summary() HeroSummary {
	return HeroSummary{
		ID:       h.ID,
		Name:     h.Name,
		Role:     h.Role,
		ImageURL: h.ImageURL,
	}
}
