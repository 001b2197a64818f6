package models

// NewsCategory links a news item to a category. The set for one news item
// is always replaced wholesale when the article is edited.
type NewsCategory struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	NewsID     uint     `gorm:"index:idx_news_categories_pair,unique" json:"news_id"`
	CategoryID uint     `gorm:"index:idx_news_categories_pair,unique" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for the NewsCategory model
func (NewsCategory) TableName() string {
	return "news_categories"
}
