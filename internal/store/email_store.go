package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ashraf-Khalifa/digital-new/internal/models"
)

type emailStore struct {
	db *gorm.DB
}

func (s *emailStore) UpsertOTP(email, code string, expiresAt time.Time) error {
	record := models.EmailRecord{
		Email:        email,
		OTP:          code,
		OTPExpiresAt: expiresAt,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"otp":            code,
			"otp_expires_at": expiresAt,
			"otp_used_at":    nil,
		}),
	}).Create(&record).Error
}

func (s *emailStore) FindByOTP(code string) (*models.EmailRecord, error) {
	var record models.EmailRecord
	err := s.db.Where("otp = ? AND otp_used_at IS NULL AND otp_expires_at > ?", code, time.Now()).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *emailStore) MarkOTPUsed(id uint) error {
	now := time.Now()
	return s.db.Model(&models.EmailRecord{}).Where("id = ?", id).
		Update("otp_used_at", now).Error
}

func (s *emailStore) FindByToken(token string) (*models.EmailRecord, error) {
	var record models.EmailRecord
	err := s.db.Where("token = ?", token).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *emailStore) UpdateToken(email, token string) (int64, error) {
	result := s.db.Model(&models.EmailRecord{}).Where("email = ?", email).
		Updates(map[string]interface{}{"token": token, "verified": true})
	return result.RowsAffected, result.Error
}

func (s *emailStore) ClearToken(token string) (int64, error) {
	result := s.db.Model(&models.EmailRecord{}).Where("token = ?", token).
		Updates(map[string]interface{}{"token": nil, "verified": false})
	return result.RowsAffected, result.Error
}
