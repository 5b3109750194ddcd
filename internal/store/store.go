// Package store wraps all database access behind the two collaborators the
// auth lifecycle talks to: EmailStore for OTP/session state keyed by email,
// and UserStore for user profiles. Multi-step flows run inside WithTx so the
// token and profile mutations appear atomic to readers.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ashraf-Khalifa/digital-new/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type EmailStore interface {
	// UpsertOTP creates or refreshes the record for email with a fresh,
	// unused OTP and its expiry.
	UpsertOTP(email, code string, expiresAt time.Time) error
	// FindByOTP resolves an outstanding (unused, unexpired) code.
	FindByOTP(code string) (*models.EmailRecord, error)
	// MarkOTPUsed invalidates a code after successful verification.
	MarkOTPUsed(id uint) error
	// FindByToken resolves the record owning a session token.
	FindByToken(token string) (*models.EmailRecord, error)
	// UpdateToken attaches token to email and marks it verified.
	// Returns the number of rows affected; zero means no such email.
	UpdateToken(email, token string) (int64, error)
	// ClearToken detaches the token and clears the verified flag.
	// Returns the number of rows affected; zero means no such token.
	ClearToken(token string) (int64, error)
}

type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
}

// Stores bundles the collaborators over one gorm connection.
type Stores struct {
	db     *gorm.DB
	Emails EmailStore
	Users  UserStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:     db,
		Emails: &emailStore{db: db},
		Users:  &userStore{db: db},
	}
}

// WithTx runs fn against transactional copies of the stores. The transaction
// commits when fn returns nil and rolls back on any error.
func (s *Stores) WithTx(fn func(tx *Stores) error) error {
	return s.db.Transaction(func(txdb *gorm.DB) error {
		return fn(New(txdb))
	})
}
