package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID *string   `json:"productId,omitempty"`
	ServiceID *string   `json:"serviceId,omitempty"`
	WalkerID  *string   `json:"walkerId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(review *entity.Review) Review {
	out := Review{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.ProductID != nil {
		id := review.ProductID.String()
		out.ProductID = &id
	}
	if review.ServiceID != nil {
		id := review.ServiceID.String()
		out.ServiceID = &id
	}
	if review.WalkerID != nil {
		id := review.WalkerID.String()
		out.WalkerID = &id
	}
	return out
}

func FromReviews(reviews []*entity.Review) []Review {
	out := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, FromReview(review))
	}
	return out
}
