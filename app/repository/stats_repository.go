package repository

import (
	"errors"

	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// statsRepository implements the StatsRepository interface
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// IncrementViews bumps the view counter, creating the row on first view
func (r *statsRepository) IncrementViews(newsID uint) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "news_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("views + 1")}),
	}).Create(&models.NewsStats{NewsID: newsID, Views: 1}).Error
}

func (r *statsRepository) GetViews(newsID uint) (int64, error) {
	var stats models.NewsStats
	err := r.db.First(&stats, "news_id = ?", newsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stats.Views, nil
}
