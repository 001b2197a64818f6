package repository

import (
	"errors"

	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
)

// reactionRepository implements the ReactionRepository interface
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository instance
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// GetByNewsAndUser returns the viewer's reaction on an item, or (nil, nil)
// when none exists.
func (r *reactionRepository) GetByNewsAndUser(newsID, userID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.Where("news_id = ? AND user_id = ?", newsID, userID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) Create(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

// UpdateKind switches an existing reaction in place instead of delete+insert
func (r *reactionRepository) UpdateKind(id uint, kind string) error {
	return r.db.Model(&models.Reaction{}).Where("id = ?", id).Update("kind", kind).Error
}

func (r *reactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reaction{}, id).Error
}

// ListAll retrieves every reaction newest first for the admin table
func (r *reactionRepository) ListAll() ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := r.db.Order("created_at DESC").Find(&reactions).Error
	return reactions, err
}

func (r *reactionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Reaction{}).Count(&count).Error
	return count, err
}

// CountsByNews returns the like and dislike totals of one news item
func (r *reactionRepository) CountsByNews(newsID uint) (int64, int64, error) {
	var likes, dislikes int64
	err := r.db.Model(&models.Reaction{}).
		Where("news_id = ? AND kind = ?", newsID, models.REACTION_LIKE).
		Count(&likes).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&models.Reaction{}).
		Where("news_id = ? AND kind = ?", newsID, models.REACTION_DISLIKE).
		Count(&dislikes).Error
	return likes, dislikes, err
}
