package request

type CreateBooking struct {
	ServiceID string  `json:"serviceId" validate:"required,uuid4"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED CANCELLED"`
}

type UpdateBookingNotes struct {
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}
