package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// News represents a published or draft news article
type News struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=3,max=255"`
	Content   string         `gorm:"type:text" json:"content" validate:"required"`
	ImageURL  string         `gorm:"type:varchar(255);default:null" json:"image_url"`
	VideoURL  string         `gorm:"type:varchar(255);default:null" json:"video_url"`
	Published bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	AuthorID  uint           `gorm:"index" json:"author_id"`
	Author    Profile        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	v := validator.New()

	return v.Struct(n)
}
