package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"geotrip/commands"
	"geotrip/dto"
	apperrors "geotrip/errors"
	"geotrip/models"
	"geotrip/response"
	"geotrip/services"
	"geotrip/validator"
)

// BookingController exposes the public submission endpoints and the admin
// booking dashboard.
type BookingController struct {
	db      *gorm.DB
	service *services.BookingService
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *BookingController {
	return &BookingController{
		db: db,
		service: services.NewBookingService(services.BookingServiceOptions{
			DB:     db,
			Redis:  rdb,
			Melody: m,
		}),
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:               booking.ID,
		ConfirmationCode: booking.ConfirmationCode,
		Package: dto.BookingPackageResponse{
			ID:       booking.Package.ID,
			Title:    booking.Package.Title,
			Price:    booking.Package.Price,
			Duration: booking.Package.Duration,
			ByBus:    booking.Package.ByBus,
			Category: booking.Package.Category,
			Location: booking.Package.Location.Name,
		},
		Name:         booking.Name,
		Email:        booking.Email,
		Phone:        booking.Phone,
		IDNumber:     booking.IDNumber,
		Adults:       booking.Adults,
		Children:     booking.Children,
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		TotalPrice:   booking.TotalPrice,
		SeatNumber:   booking.SeatNumber,
		SeatSelected: booking.SeatSelected,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}

	if booking.Payment != nil {
		resp.Payment = &dto.BookingPaymentResponse{
			ID:     booking.Payment.ID,
			Amount: booking.Payment.Amount,
			Status: booking.Payment.Status,
		}
	}

	return resp
}

// CreateBooking handles the public booking form. Validation failures come
// back as a field-to-message map so the form can highlight each input.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	booking, fieldErrs, err := ctrl.service.CreateBooking(&request)
	if err != nil {
		response.ServerError(c)
		return
	}
	if fieldErrs.HasErrors() {
		response.FieldErrors(c, fieldErrs)
		return
	}

	if err := ctrl.db.
		Preload("Package").
		Preload("Package.Location").
		Preload("Payment").
		First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// Quote returns a price and availability preview for the booking form.
func (ctrl *BookingController) Quote(c *gin.Context) {
	var request dto.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	quote, err := ctrl.service.Quote(request)
	if err != nil {
		if err == apperrors.ErrPackageNotFound || err == apperrors.ErrDateNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, quote)
}

// GetBookings lists bookings for the admin dashboard, filterable by package
// and search string.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	query := ctrl.db.Model(&models.Booking{}).
		Preload("Package").
		Preload("Package.Location").
		Preload("Payment")

	if packageIDStr := c.Query("packageId"); packageIDStr != "" {
		if packageID, err := strconv.Atoi(packageIDStr); err == nil {
			query = query.Where("package_id = ?", packageID)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR confirmation_code ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

// GetBookingDetail returns one booking for the admin dashboard.
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var booking models.Booking
	if err := ctrl.db.
		Preload("Package").
		Preload("Package.Location").
		Preload("Payment").
		First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// UpdateBooking applies an admin edit. Only the fields present in the
// payload change; traveler fields are re-validated before saving.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var booking models.Booking
	if err := ctrl.db.First(&booking, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if request.Name != nil {
		booking.Name = *request.Name
	}
	if request.Email != nil {
		booking.Email = strings.ToLower(strings.TrimSpace(*request.Email))
	}
	if request.Phone != nil {
		booking.Phone = *request.Phone
	}
	if request.IDNumber != nil {
		booking.IDNumber = *request.IDNumber
	}
	if request.Adults != nil {
		booking.Adults = *request.Adults
	}
	if request.Children != nil {
		booking.Children = *request.Children
	}
	if request.TotalPrice != nil {
		booking.TotalPrice = *request.TotalPrice
	}
	if request.SeatNumber != nil {
		booking.SeatNumber = *request.SeatNumber
	}
	if request.SeatSelected != nil {
		booking.SeatSelected = *request.SeatSelected
	}

	fieldErrs := validator.ValidateBookingRequest(&dto.CreateBookingRequest{
		PackageID:  booking.PackageID,
		Name:       booking.Name,
		Email:      booking.Email,
		Phone:      booking.Phone,
		IDNumber:   booking.IDNumber,
		Adults:     booking.Adults,
		Children:   booking.Children,
		TotalPrice: booking.TotalPrice,
	})
	if fieldErrs.HasErrors() {
		response.FieldErrors(c, fieldErrs)
		return
	}

	if err := commands.NewUpdateBookingCommand(&booking, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, convertToBookingResponse(booking))
}

// DeleteBooking removes a booking and its payment (admin).
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var booking models.Booking
	if err := ctrl.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := commands.NewDeleteBookingCommand(booking.ID, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, gin.H{"id": booking.ID})
}
