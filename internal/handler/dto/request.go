package dto

type CustomerInfoRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
}

type CreateBookingRequest struct {
	OfferingID           string              `json:"offering_id" binding:"required,uuid"`
	Customer             CustomerInfoRequest `json:"customer" binding:"required"`
	NumberOfParticipants int                 `json:"number_of_participants" binding:"required,gte=1"`
	BookingDate          string              `json:"booking_date" binding:"required"`
	SpecialRequests      string              `json:"special_requests" binding:"max=500"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
