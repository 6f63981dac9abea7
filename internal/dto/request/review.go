package request

// CreateReview targets exactly one subject. The usecase enforces that
// a single subject ID is set.
type CreateReview struct {
	ProductID *string `json:"productId" validate:"omitempty,uuid4"`
	ServiceID *string `json:"serviceId" validate:"omitempty,uuid4"`
	WalkerID  *string `json:"walkerId" validate:"omitempty,uuid4"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment" validate:"omitempty,max=1000"`
}

type ListReviews struct {
	Pagination
	ProductID *string
	ServiceID *string
	WalkerID  *string
}
