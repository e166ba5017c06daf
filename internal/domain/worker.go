package domain

import "time"

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityUnavailable
}

// Worker is a service provider account. The OTP columns hold the pending
// email verification code (peppered hash) and are never serialized.
type Worker struct {
	ID                  int64        `json:"id" gorm:"primaryKey"`
	Name                string       `json:"name"`
	Email               string       `json:"email" gorm:"uniqueIndex"`
	Phone               string       `json:"phone" gorm:"uniqueIndex"`
	PasswordHash        string       `json:"-" gorm:"column:password_hash"`
	Location            string       `json:"location"`
	ProfilePicURL       string       `json:"profile_pic_url"`
	Occupation          string       `json:"occupation"`
	Skills              []string     `json:"skills" gorm:"serializer:json"`
	ExperienceYears     int          `json:"experience_years"`
	Bio                 string       `json:"bio"`
	PriceHint           float64      `json:"price_hint,omitempty"`
	Availability        Availability `json:"availability"`
	AadharNumber        string       `json:"aadhar_number,omitempty"`
	AadharPicURL        string       `json:"aadhar_pic_url,omitempty"`
	IntroVidURL         string       `json:"intro_vid_url,omitempty"`
	PreviousWorkPicURLs []string     `json:"previous_work_pic_urls" gorm:"serializer:json"`
	EmailVerified       bool         `json:"email_verified"`
	OTPHash             string       `json:"-" gorm:"column:otp_hash"`
	OTPExpiresAt        *time.Time   `json:"-" gorm:"column:otp_expires_at"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
