package repository

import (
	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByNews retrieves the comments of one news item, newest first
func (r *commentRepository) GetByNews(newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("news_id = ?", newsID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// ListAll retrieves every comment newest first for the admin table
func (r *commentRepository) ListAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}

func (r *commentRepository) CountByNews(newsID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("news_id = ?", newsID).Count(&count).Error
	return count, err
}
