package request

type CreateProduct struct {
	CategoryID  string  `json:"categoryId" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

type UpdateProduct struct {
	CategoryID  string  `json:"categoryId" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

type CreateCategory struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type ListProducts struct {
	Pagination
	SellerID   *string
	CategoryID *string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
}
