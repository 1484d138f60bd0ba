package dto

// Admin CRUD payloads for the smaller resources. These mirror the catalog
// forms one-to-one, so they stay flat.

type LocationRequest struct {
	ID      uint   `json:"id,omitempty"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type CategoryRequest struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name"`
}

type BusRequest struct {
	ID        uint     `json:"id,omitempty"`
	Name      string   `json:"name"`
	SeatCount int      `json:"seatCount"`
	PackageID uint     `json:"packageId"`
	Seats     []string `json:"seats,omitempty"` // seat numbers, replace-all
}

type DiscountRequest struct {
	ID       uint   `json:"id,omitempty"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Discount int    `json:"discount"`
	Status   int    `json:"status"`
}

type UpdatePaymentStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
