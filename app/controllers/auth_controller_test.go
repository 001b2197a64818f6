package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vestniklab/Vestnik/app/models"
)

type fakeProfileRepo struct {
	taken     map[string]bool
	lookupErr error
}

func (f *fakeProfileRepo) Create(profile *models.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(id uint) (*models.Profile, error) {
	return nil, errors.New("profile not found")
}
func (f *fakeProfileRepo) GetByUsername(username string) (*models.Profile, error) {
	return nil, errors.New("profile not found")
}
func (f *fakeProfileRepo) List() ([]models.Profile, error)      { return nil, nil }
func (f *fakeProfileRepo) Update(profile *models.Profile) error { return nil }
func (f *fakeProfileRepo) Delete(id uint) error                 { return nil }
func (f *fakeProfileRepo) Count() (int64, error)                { return 0, nil }

func (f *fakeProfileRepo) UsernameExists(username string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	return f.taken[username], nil
}

func (f *fakeProfileRepo) UsernameExistsExceptID(username string, id uint) (bool, error) {
	return f.UsernameExists(username)
}

func TestRegistrationUsernameError(t *testing.T) {
	profiles := &fakeProfileRepo{taken: map[string]bool{"ivan": true}}

	assert.Equal(t, "Имя пользователя обязательно", registrationUsernameError(profiles, ""))
	assert.Equal(t, "Это имя пользователя уже занято", registrationUsernameError(profiles, "ivan"))
	assert.Empty(t, registrationUsernameError(profiles, "maria"))
}

func TestRegistrationUsernameErrorLookupFailure(t *testing.T) {
	// A broken lookup must not block registration; the unique constraint
	// inside the account transaction still catches duplicates.
	profiles := &fakeProfileRepo{lookupErr: errors.New("db down")}

	assert.Empty(t, registrationUsernameError(profiles, "ivan"))
}
