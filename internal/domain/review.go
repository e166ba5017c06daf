package domain

import "time"

// Review is append-only: once stored it is never updated or deleted.
type Review struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	WorkerID     int64     `json:"worker_id" gorm:"index"`
	AuthorID     int64     `json:"author_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsAnonymous  bool      `json:"is_anonymous"`
	AuthorName   string    `json:"author_name"`
	AuthorPicURL string    `json:"author_pic_url"`
	CreatedAt    time.Time `json:"created_at"`
}
