package models

// NewsStats keeps the per-article view counter shown on the author dashboard.
type NewsStats struct {
	NewsID uint  `gorm:"primaryKey;autoIncrement:false" json:"news_id"`
	Views  int64 `gorm:"default:0" json:"views"`
}

// TableName specifies the table name for the NewsStats model
func (NewsStats) TableName() string {
	return "news_stats"
}
