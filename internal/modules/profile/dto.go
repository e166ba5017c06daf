package profile

import "mime/multipart"

// UpdateWorkerRequest carries a partial profile update. Nil fields are left
// untouched. Email and phone are identity fields and cannot be changed here.
type UpdateWorkerRequest struct {
	Name         *string  `form:"name" json:"name" validate:"omitempty,max=100"`
	Location     *string  `form:"location" json:"location" validate:"omitempty,max=100"`
	Occupation   *string  `form:"occupation" json:"occupation" validate:"omitempty,max=100"`
	Skills       []string `form:"skills" json:"skills" validate:"omitempty,dive,max=100"`
	Experience   *int     `form:"experience" json:"experience" validate:"omitempty,min=0,max=60"`
	Bio          *string  `form:"bio" json:"bio" validate:"omitempty,max=2000"`
	Price        *float64 `form:"price" json:"price" validate:"omitempty,min=0"`
	Availability *string  `form:"availability" json:"availability" validate:"omitempty,oneof=available unavailable"`
}

// UpdateCustomerRequest carries a partial customer profile update.
type UpdateCustomerRequest struct {
	Name     *string `form:"name" json:"name" validate:"omitempty,max=100"`
	Location *string `form:"location" json:"location" validate:"omitempty,max=100"`
}

// WorkerFiles holds optional replacement uploads for a worker profile.
type WorkerFiles struct {
	ProfilePic       *multipart.FileHeader
	PreviousWorkPics []*multipart.FileHeader
	IntroVid         *multipart.FileHeader
}

// CustomerFiles holds the optional replacement avatar.
type CustomerFiles struct {
	ProfilePic *multipart.FileHeader
}
