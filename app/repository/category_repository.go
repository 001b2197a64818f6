package repository

import (
	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List retrieves all categories alphabetically for the sidebar and editor
func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// ListNewest retrieves all categories newest first for the admin table
func (r *categoryRepository) ListNewest() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("created_at DESC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category together with its news links
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.NewsCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

func (r *categoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *categoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *categoryRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// GetForNews retrieves the categories linked to one news item
func (r *categoryRepository) GetForNews(newsID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Joins("JOIN news_categories ON news_categories.category_id = categories.id").
		Where("news_categories.news_id = ?", newsID).
		Order("categories.name ASC").
		Find(&categories).Error
	return categories, err
}

// ReplaceForNews swaps the complete link set for a news item. Delete and
// reinsert run in one transaction so a failure never strands the article
// without its previous links.
func (r *categoryRepository) ReplaceForNews(newsID uint, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", newsID).Delete(&models.NewsCategory{}).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		links := make([]models.NewsCategory, 0, len(categoryIDs))
		for _, cid := range categoryIDs {
			links = append(links, models.NewsCategory{NewsID: newsID, CategoryID: cid})
		}
		return tx.Create(&links).Error
	})
}
