package dto

type PricingPlanRequest struct {
	ID         uint   `json:"id"`
	RoomTypeID uint   `json:"roomTypeId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	FromDate   string `json:"fromDate" validate:"required"`
	ToDate     string `json:"toDate" validate:"required"`
	Adjustment int    `json:"adjustment"`
}

type RatePlanRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Percent  int    `json:"percent" validate:"min=0,max=100"`
	FromDate string `json:"fromDate" validate:"required"`
	ToDate   string `json:"toDate" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type ServiceRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"min=0"`
	Image       string `json:"image"`
}
