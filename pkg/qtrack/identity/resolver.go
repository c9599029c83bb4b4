// Package identity maps an authenticated principal to an internal user
// record, auto-provisioning one on first contact.
package identity

import (
	"errors"
	"strings"

	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"gorm.io/gorm"
)

var ErrEmptyEmail = errors.New("email is required")

// Resolve returns the user whose email matches, creating one with role User
// if none exists. displayName defaults to the local part of the email.
// Idempotent: repeated calls for the same email return the same user and
// insert at most one row. Two concurrent first contacts from the same email
// can both miss the lookup; the unique index on email rejects the second
// insert, which is then resolved by a re-fetch.
func Resolve(db *gorm.DB, email, displayName string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrEmptyEmail
	}
	if displayName == "" {
		displayName = localPart(email)
	}

	var user models.User
	err := db.Where(models.User{Email: email}).
		Attrs(models.User{Username: displayName, Role: models.RoleUser}).
		FirstOrCreate(&user).Error
	if err != nil {
		// Lost the creation race: the row exists now, fetch it.
		if fetchErr := db.Where("email = ?", email).First(&user).Error; fetchErr == nil {
			return user, nil
		}
		return models.User{}, err
	}
	return user, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
