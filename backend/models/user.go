package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string           `gorm:"unique;not null" json:"email"`
	PasswordHash string           `gorm:"not null" json:"-"`
	Solved       pq.StringArray   `gorm:"type:text[]" json:"solved"`
	SolvedDates  pq.StringArray   `gorm:"type:text[]" json:"solvedDates"`
	Recent       []RecentActivity `json:"recent"`

	// Pending signup verification. Both nil once verified.
	OTP        *string    `json:"-"`
	OTPExpires *time.Time `json:"-"`
}

// RecentActivity is one add-event, kept for the dashboard's activity feed.
// Rows are appended on add and stripped by problem key on remove.
type RecentActivity struct {
	gorm.Model `json:"-"`
	UserID     uint   `json:"-"`
	Name       string `json:"name"` // problem key, "Company::Problem Name"
	Date       string `json:"date"` // YYYY-MM-DD
}

// OTPPending reports whether the account still has an unexpired signup code.
func (u *User) OTPPending(now time.Time) bool {
	return u.OTP != nil && u.OTPExpires != nil && u.OTPExpires.After(now)
}
