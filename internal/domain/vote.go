package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a (user, team) upvote. The unique index is the source of
// truth for the one-vote-per-user-per-team rule; toggling creates or
// deletes a row, never updates one.
type Vote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_team_vote"`
	TeamID    uuid.UUID `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_user_team_vote"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

func (Vote) TableName() string {
	return "votes"
}
