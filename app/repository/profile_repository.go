package repository

import (
	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("username = ?", username).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List retrieves all profiles newest first for the admin table
func (r *profileRepository) List() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) Delete(id uint) error {
	return r.db.Delete(&models.Profile{}, id).Error
}

func (r *profileRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}

// UsernameExists checks if a username is already taken
func (r *profileRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// UsernameExistsExceptID checks if a username exists excluding a specific profile
func (r *profileRepository) UsernameExistsExceptID(username string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("username = ? AND id != ?", username, id).Count(&count).Error
	return count > 0, err
}
