package models

import (
	"time"
)

const (
	REACTION_LIKE    = "like"
	REACTION_DISLIKE = "dislike"
)

// Reaction records a single like or dislike. The unique index on
// (news_id, user_id) keeps it to at most one row per viewer and item.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"uniqueIndex:idx_reactions_news_user" json:"news_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reactions_news_user" json:"user_id"`
	Kind      string    `gorm:"type:varchar(10)" json:"kind" validate:"oneof=like dislike"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ValidReactionKind reports whether kind is one of the two supported kinds.
func ValidReactionKind(kind string) bool {
	return kind == REACTION_LIKE || kind == REACTION_DISLIKE
}
