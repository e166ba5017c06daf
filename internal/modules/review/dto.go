package review

// CreateReviewRequest carries a new review. Author identity comes from the
// token, never from the body.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	IsAnon  bool   `json:"isAnon"`
}
