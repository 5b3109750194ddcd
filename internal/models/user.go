package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:255;not null" json:"fullName"`
	PhotoURL     string    `gorm:"size:2048" json:"photoUrl,omitempty"`
	Number       string    `gorm:"size:50" json:"number,omitempty"`
	Gender       string    `gorm:"size:20" json:"gender,omitempty"`
	Birthdate    string    `gorm:"size:50" json:"birthdate,omitempty"`
	Nationality  string    `gorm:"size:100" json:"nationality,omitempty"`
	City         string    `gorm:"size:100" json:"city,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
