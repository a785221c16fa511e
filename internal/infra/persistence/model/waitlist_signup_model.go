package model

import (
	"time"
)

// WaitlistSignupModel is the GORM-specific struct for the 'waitlist_signups' table.
type WaitlistSignupModel struct {
	FirstName      string `gorm:"type:text;not null"`
	LastName       string `gorm:"type:text;not null"`
	PhoneNumber    string `gorm:"type:text;not null"`
	FormattedPhone string `gorm:"type:text"`
	CountryCode    string `gorm:"type:varchar(8)"`
	BoxType        string `gorm:"type:varchar(16);not null;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitlistSignupModel) TableName() string {
	return "waitlist_signups"
}
