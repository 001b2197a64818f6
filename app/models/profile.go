package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile is the public face of a user. Its ID equals the owning User.ID
// and is assigned at registration, never auto-incremented.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"uniqueIndex;type:varchar(100)" json:"username" validate:"required,min=3,max=100"`
	FullName  string    `gorm:"type:varchar(200)" json:"full_name" validate:"max=200"`
	AvatarURL string    `gorm:"type:varchar(255);default:null" json:"avatar_url" validate:"max=255"`
	Website   string    `gorm:"type:varchar(255);default:null" json:"website" validate:"omitempty,url,max=255"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Profile) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
