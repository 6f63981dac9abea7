package request

type CreateService struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=15,max=480"`
}

type UpdateService struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=15,max=480"`
}

type ListServices struct {
	Pagination
	WalkerID *string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}
