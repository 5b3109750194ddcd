package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ashraf-Khalifa/digital-new/internal/models"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
