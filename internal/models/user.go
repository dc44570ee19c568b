package models

import (
	"time"
)

type User struct {
	ID                     uint64     `gorm:"primarykey" json:"id"`
	Username               string     `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email                  string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash           string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName              string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName               string     `gorm:"type:varchar(50);not null" json:"last_name"`
	IsEmailVerified        bool       `gorm:"default:false" json:"is_email_verified"`
	EmailVerificationToken string     `gorm:"type:varchar(100)" json:"-"`
	ResetToken             string     `gorm:"type:varchar(100)" json:"-"`
	ResetTokenExpires      *time.Time `json:"-"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	// Relations
	Portfolio *Portfolio `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"portfolio,omitempty"`
}

// FullName returns the display name used in seeded bios, mail and CV filenames.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
