package models

import (
	"time"
)

// Comment is append-only from the reader's point of view; only admins delete.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"index" json:"news_id"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	Author    Profile   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content   string    `gorm:"type:text" json:"content" validate:"required,min=1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
