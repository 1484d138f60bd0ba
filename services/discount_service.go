package services

import (
	"time"

	"github.com/olahol/melody"
	"gorm.io/gorm"

	"geotrip/constants"
	"geotrip/models"
	"geotrip/services/logger"
)

// DiscountService owns discount lifecycle logic outside the admin CRUD:
// the nightly job deactivates programs whose end date has passed.
type DiscountService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewDiscountService(db *gorm.DB, l logger.Logger) *DiscountService {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &DiscountService{db: db, logger: l}
}

// DeactivateExpired flips active discounts whose ToDate is in the past to
// inactive. Dates are stored dd/mm/yyyy; unparseable rows are skipped and
// logged rather than failing the whole sweep.
func (s *DiscountService) DeactivateExpired(m *melody.Melody) error {
	var discounts []models.Discount
	if err := s.db.Where("status = ?", constants.DiscountStatusActive).Find(&discounts).Error; err != nil {
		return err
	}

	now := time.Now()
	expired := 0
	for i := range discounts {
		toDate, err := time.Parse("02/01/2006", discounts[i].ToDate)
		if err != nil {
			s.logger.Error("discount %d has invalid ToDate %q: %v", discounts[i].ID, discounts[i].ToDate, err)
			continue
		}
		if toDate.Before(now) {
			if err := s.db.Model(&models.Discount{}).
				Where("id = ?", discounts[i].ID).
				Update("status", constants.DiscountStatusInactive).Error; err != nil {
				return err
			}
			expired++
		}
	}

	if expired > 0 {
		s.logger.Info("deactivated %d expired discounts", expired)
	}
	return nil
}
