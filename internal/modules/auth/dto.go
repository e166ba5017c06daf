package auth

import "mime/multipart"

type RegisterCustomerRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	Password string `form:"password" json:"password"`
	Location string `form:"location" json:"location"`
}

type RegisterWorkerRequest struct {
	Name         string   `form:"name" json:"name"`
	Email        string   `form:"email" json:"email"`
	Phone        string   `form:"phone" json:"phone"`
	Password     string   `form:"password" json:"password"`
	Location     string   `form:"location" json:"location"`
	Occupation   string   `form:"occupation" json:"occupation"`
	Skills       []string `form:"skills" json:"skills"`
	Experience   int      `form:"experience" json:"experience"`
	Availability string   `form:"availability" json:"availability"`
	Bio          string   `form:"bio" json:"bio"`
	Price        float64  `form:"price" json:"price"`
	Aadhar       string   `form:"aadhar" json:"aadhar"`
}

// CustomerFiles are the optional multipart attachments on customer signup.
type CustomerFiles struct {
	ProfilePic *multipart.FileHeader
}

// WorkerFiles are the multipart attachments on worker signup and profile
// update. Field names follow the public form contract: profilePic,
// aadharPic, previousWorkPics, introVid.
type WorkerFiles struct {
	ProfilePic       *multipart.FileHeader
	AadharPic        *multipart.FileHeader
	PreviousWorkPics []*multipart.FileHeader
	IntroVid         *multipart.FileHeader
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

func (r LoginRequest) identifier() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	return r.Email
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}
