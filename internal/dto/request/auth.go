package request

type Register struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
	Role     string `json:"role" validate:"required,oneof=CUSTOMER SELLER WALKER"`

	// Seller profile, required when role is SELLER.
	StoreName string `json:"storeName" validate:"required_if=Role SELLER,omitempty,min=2,max=100"`

	// Walker profile, required when role is WALKER.
	ExperienceYears int     `json:"experienceYears" validate:"omitempty,min=0,max=80"`
	PricePerHour    float64 `json:"pricePerHour" validate:"required_if=Role WALKER,omitempty,gt=0"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Refresh struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
