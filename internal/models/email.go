package models

import "time"

// EmailRecord tracks the OTP and session state for a single email address.
// The token is the opaque session credential; it is set on signup/login/refresh
// and cleared on logout. A nil token means no active session.
type EmailRecord struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	OTP          string     `gorm:"column:otp;size:6" json:"-"`
	OTPExpiresAt time.Time  `gorm:"column:otp_expires_at" json:"-"`
	OTPUsedAt    *time.Time `gorm:"column:otp_used_at" json:"-"`
	Token        *string    `gorm:"uniqueIndex;size:64" json:"-"`
	Verified     bool       `json:"verified"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}
