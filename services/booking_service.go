package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"geotrip/builders"
	"geotrip/constants"
	"geotrip/dto"
	"geotrip/errors"
	"geotrip/models"
	"geotrip/services/logger"
	"geotrip/validator"
)

// PackagesCacheKey caches the full catalog snapshot; every booking write
// invalidates it.
const PackagesCacheKey = "packages:all"

// BookingService orchestrates the booking submission flow: validate the
// form, check capacity, persist the booking together with its pending
// payment, then notify the admin dashboard. There is exactly one submission
// component; bus and regular tours go through the same path.
type BookingService struct {
	db     *gorm.DB
	rdb    *redis.Client
	m      *melody.Melody
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		rdb:    opts.Redis,
		m:      opts.Melody,
		logger: l,
	}
}

// CreateBooking runs the full submission flow. Field and business rule
// failures come back as per-field messages with a nil error; only transport
// and database problems are returned as errors. The capacity check and both
// inserts run inside one transaction with a row lock on the package, so two
// concurrent submissions cannot both pass the check. The payment row is
// created in the same transaction: booking and payment either both exist or
// neither does.
func (s *BookingService) CreateBooking(req *dto.CreateBookingRequest) (*models.Booking, validator.FieldErrors, error) {
	fieldErrs := validator.ValidateBookingRequest(req)
	if fieldErrs.HasErrors() {
		return nil, fieldErrs, nil
	}

	var created models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pkg models.Package
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pkg, req.PackageID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				fieldErrs.Add("packageId", "Package not found")
				return errors.ErrValidationFailed
			}
			return err
		}

		var bookings []models.Booking
		if err := tx.Where("package_id = ?", pkg.ID).Find(&bookings).Error; err != nil {
			return err
		}

		// The total is always recomputed server side; the client estimate is
		// only used for display.
		booking := builders.NewBookingBuilder().
			WithPackage(pkg.ID).
			WithTraveler(req.Name, req.Email, req.Phone, req.IDNumber).
			WithPartySize(req.Adults, req.Children).
			WithSeat(req.SeatNumber, req.SeatSelected, req.SeatID).
			WithDiscount(req.DiscountID).
			WithTotalPrice(CalculateTotal(pkg.Price, req.Adults, req.Children, req.SeatSelected)).
			Build()

		if pkg.ByBus {
			var dates []models.PackageDate
			if err := tx.Where("package_id = ?", pkg.ID).Find(&dates).Error; err != nil {
				return err
			}
			// No occurrences scheduled is a different condition from every
			// occurrence being full.
			if len(dates) == 0 {
				fieldErrs.Add("dateId", "This tour has no scheduled departure dates yet")
				return errors.ErrNoDatesSet
			}
			if req.DateID == nil {
				fieldErrs.Add("dateId", "Please select a departure date")
				return errors.ErrValidationFailed
			}

			var date *models.PackageDate
			for i := range dates {
				if dates[i].ID == *req.DateID {
					date = &dates[i]
					break
				}
			}
			if date == nil {
				fieldErrs.Add("dateId", "Departure date not found for this package")
				return errors.ErrValidationFailed
			}

			remaining := RemainingForDate(*date, bookings)
			if capErrs := validator.ValidateCapacity(req.Adults, req.Children, remaining); capErrs.HasErrors() {
				for field, msg := range capErrs {
					fieldErrs.Add(field, msg)
				}
				return errors.ErrValidationFailed
			}

			booking.PackageDateID = &date.ID
			start, end := date.StartDate, date.EndDate
			booking.StartDate = &start
			booking.EndDate = &end
		} else {
			remaining := RemainingForPackage(pkg, bookings)
			if capErrs := validator.ValidateCapacity(req.Adults, req.Children, remaining); capErrs.HasErrors() {
				for field, msg := range capErrs {
					fieldErrs.Add(field, msg)
				}
				return errors.ErrValidationFailed
			}

			start := time.Now()
			if req.Date != "" {
				parsed, err := time.Parse("2006-01-02", req.Date)
				if err != nil {
					fieldErrs.Add("date", "Invalid date format, expected yyyy-mm-dd")
					return errors.ErrValidationFailed
				}
				start = parsed
			}
			booking.StartDate = &start
		}

		booking.ConfirmationCode = uuid.NewString()

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		payment := models.Payment{
			BookingID: booking.ID,
			Amount:    booking.TotalPrice,
			Status:    constants.PaymentStatusPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		booking.Payment = &payment
		booking.Package = pkg
		created = *booking
		return nil
	})

	if err != nil {
		if err == errors.ErrValidationFailed || err == errors.ErrNoDatesSet {
			return nil, fieldErrs, nil
		}
		return nil, nil, err
	}

	s.afterCreate(&created)
	return &created, nil, nil
}

// afterCreate invalidates the catalog cache and notifies the dashboard.
// Neither failure affects the already committed booking.
func (s *BookingService) afterCreate(booking *models.Booking) {
	if s.rdb != nil {
		if err := DeleteFromRedis(context.Background(), s.rdb, PackagesCacheKey); err != nil {
			s.logger.Error("failed to invalidate package cache: %v", err)
		}
	}

	if s.m != nil {
		payload, err := json.Marshal(map[string]interface{}{
			"event":      "booking.created",
			"bookingId":  booking.ID,
			"packageId":  booking.PackageID,
			"totalPrice": booking.TotalPrice,
		})
		if err == nil {
			if err := s.m.Broadcast(payload); err != nil {
				s.logger.Error("failed to broadcast booking notification: %v", err)
			}
		}
	}

	s.logger.Info("booking %d created for package %d (%s)", booking.ID, booking.PackageID, booking.ConfirmationCode)
}

// Quote recomputes price and availability for the current form inputs. The
// form calls this on every relevant change so the estimate shown always
// matches what CreateBooking will persist.
func (s *BookingService) Quote(req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	var pkg models.Package
	if err := s.db.First(&pkg, req.PackageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPackageNotFound
		}
		return nil, err
	}

	var bookings []models.Booking
	if err := s.db.Where("package_id = ?", pkg.ID).Find(&bookings).Error; err != nil {
		return nil, err
	}

	quote := &dto.QuoteResponse{
		PackageID:     pkg.ID,
		UnitPrice:     pkg.Price,
		AdultsTotal:   pkg.Price * float64(req.Adults),
		ChildrenTotal: pkg.Price * ChildPriceMultiplier * float64(req.Children),
		Total:         CalculateTotal(pkg.Price, req.Adults, req.Children, req.SeatSelected),
		HasDates:      true,
	}
	if req.SeatSelected {
		quote.SeatFee = SeatSelectionFee
	}

	if pkg.ByBus {
		var dates []models.PackageDate
		if err := s.db.Where("package_id = ?", pkg.ID).Order("start_date asc").Find(&dates).Error; err != nil {
			return nil, err
		}
		if len(dates) == 0 {
			quote.HasDates = false
			return quote, nil
		}
		if req.DateID != nil {
			for i := range dates {
				if dates[i].ID == *req.DateID {
					quote.Remaining = RemainingForDate(dates[i], bookings)
					return quote, nil
				}
			}
			return nil, errors.ErrDateNotFound
		}
		// No occurrence picked yet; report the nearest one.
		quote.Remaining = RemainingForDate(dates[0], bookings)
		return quote, nil
	}

	quote.Remaining = RemainingForPackage(pkg, bookings)
	return quote, nil
}

