package domain

import "time"

// DefaultProfilePicURL is used when an account is created without a profile picture.
const DefaultProfilePicURL = "https://static.vecteezy.com/system/resources/thumbnails/009/292/244/small/default-avatar-icon-of-social-media-user-vector.jpg"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
)

type Customer struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"uniqueIndex"`
	Phone         string    `json:"phone" gorm:"uniqueIndex"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash"`
	Location      string    `json:"location"`
	ProfilePicURL string    `json:"profile_pic_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
