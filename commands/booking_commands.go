package commands

import (
	"geotrip/models"

	"gorm.io/gorm"
)

// BookingCommand is the interface for booking mutations issued from the
// admin dashboard.
type BookingCommand interface {
	Execute() error
}

// UpdateBookingCommand persists an admin edit of a booking.
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// DeleteBookingCommand removes a booking together with its dependent
// payment, payment first.
type DeleteBookingCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID uint, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", c.bookingID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, c.bookingID).Error
	})
}
