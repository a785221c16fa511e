package entity

import "time"

// BoxType is the subscription box a waitlist signup is interested in.
type BoxType string

const (
	BoxTypeGeneral BoxType = "general"
	BoxTypeExplore BoxType = "explore"
	BoxTypeGlow    BoxType = "glow"
	BoxTypeCustom  BoxType = "custom"
)

// IsValid reports whether the box type is one of the known values.
func (b BoxType) IsValid() bool {
	switch b {
	case BoxTypeGeneral, BoxTypeExplore, BoxTypeGlow, BoxTypeCustom:
		return true
	default:
		return false
	}
}

// WaitlistSignup is a captured waitlist form submission.
type WaitlistSignup struct {
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PhoneNumber    string    `json:"phone_number"`
	FormattedPhone string    `json:"formatted_phone"`
	CountryCode    string    `json:"country_code"`
	BoxType        BoxType   `json:"box_type"`
	CreatedAt      time.Time `json:"created_at"`
}
