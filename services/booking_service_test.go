package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"geotrip/dto"
	apperrors "geotrip/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newTestBookingService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewBookingService(BookingServiceOptions{DB: db}), mock
}

func packageRows(id uint, price float64, maxPeople int, byBus bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "price", "max_people", "by_bus", "location_id"}).
		AddRow(id, "Svaneti Trek", price, maxPeople, byBus, 1)
}

func validCreateRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		PackageID:  1,
		Name:       "Giorgi Beridze",
		Email:      "giorgi@example.com",
		IDNumber:   "12345678901",
		Adults:     2,
		Children:   1,
		TotalPrice: 300,
	}
}

func TestCreateBookingFieldErrorsSkipDatabase(t *testing.T) {
	service, mock := newTestBookingService(t)

	req := validCreateRequest()
	req.Email = "not-an-email"
	req.IDNumber = "123"

	booking, fieldErrs, err := service.CreateBooking(req)

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "idNumber")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingSuccessPersistsBookingAndPayment(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 100, 10, false))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	booking, fieldErrs, err := service.CreateBooking(validCreateRequest())

	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors(), "unexpected field errors: %v", fieldErrs)
	require.NotNil(t, booking)

	// 2 adults at 100, 1 child at half rate, no seat: 250 computed server
	// side regardless of the client estimate.
	assert.Equal(t, 250.0, booking.TotalPrice)
	assert.NotEmpty(t, booking.ConfirmationCode)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, booking.TotalPrice, booking.Payment.Amount)
	assert.Equal(t, "pending", booking.Payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingCapacityExceededRollsBack(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 100, 10, false))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}))
	mock.ExpectRollback()

	req := validCreateRequest()
	req.Adults = 11
	req.Children = 0
	req.TotalPrice = 1100

	booking, fieldErrs, err := service.CreateBooking(req)

	assert.NoError(t, err)
	assert.Nil(t, booking)
	require.Contains(t, fieldErrs, "adults")
	assert.Contains(t, fieldErrs["adults"], "11")
	assert.Contains(t, fieldErrs["adults"], "10")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingBusTourRequiresDate(t *testing.T) {
	service, mock := newTestBookingService(t)

	start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 90, 0, true))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}))
	mock.ExpectQuery(`SELECT .* FROM "package_dates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "max_people"}).
			AddRow(3, 1, start, start, 5))
	mock.ExpectRollback()

	booking, fieldErrs, err := service.CreateBooking(validCreateRequest())

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, "Please select a departure date", fieldErrs["dateId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingBusTourWithoutScheduledDates(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 90, 0, true))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}))
	mock.ExpectQuery(`SELECT .* FROM "package_dates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "max_people"}))
	mock.ExpectRollback()

	booking, fieldErrs, err := service.CreateBooking(validCreateRequest())

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, fieldErrs["dateId"], "no scheduled departure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingBusTourChecksOccurrenceCapacity(t *testing.T) {
	service, mock := newTestBookingService(t)

	start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 90, 0, true))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "package_date_id", "adults"}).
			AddRow(5, 1, 3, 3))
	mock.ExpectQuery(`SELECT .* FROM "package_dates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "max_people"}).
			AddRow(3, 1, start, start, 5))
	mock.ExpectRollback()

	dateID := uint(3)
	req := validCreateRequest()
	req.DateID = &dateID
	req.Adults = 3
	req.Children = 0
	req.TotalPrice = 270

	// 3 of 5 seats already booked on this occurrence: 3 more do not fit.
	booking, fieldErrs, err := service.CreateBooking(req)

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, fieldErrs, "adults")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingBusTourBooksFreeOccurrence(t *testing.T) {
	service, mock := newTestBookingService(t)

	start := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnRows(packageRows(1, 90, 0, true))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "package_date_id", "adults"}).
			AddRow(5, 1, 3, 3))
	mock.ExpectQuery(`SELECT .* FROM "package_dates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "max_people"}).
			AddRow(3, 1, start.AddDate(0, 0, -10), start.AddDate(0, 0, -10), 5).
			AddRow(4, 1, start, start, 5))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	dateID := uint(4)
	req := validCreateRequest()
	req.DateID = &dateID
	req.Adults = 3
	req.Children = 0
	req.TotalPrice = 270

	// The other occurrence of the same package is untouched by the three
	// bookings above, so the same party fits there.
	booking, fieldErrs, err := service.CreateBooking(req)

	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors(), "unexpected field errors: %v", fieldErrs)
	require.NotNil(t, booking)
	require.NotNil(t, booking.PackageDateID)
	assert.Equal(t, dateID, *booking.PackageDateID)
	require.NotNil(t, booking.StartDate)
	assert.True(t, booking.StartDate.Equal(start))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPackageNotFound(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "packages" .*FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	booking, fieldErrs, err := service.CreateBooking(validCreateRequest())

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, fieldErrs, "packageId")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRegularPackage(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectQuery(`SELECT .* FROM "packages"`).
		WillReturnRows(packageRows(1, 100, 10, false))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}).
			AddRow(2, 1, 4))

	quote, err := service.Quote(dto.QuoteRequest{
		PackageID:    1,
		Adults:       2,
		Children:     1,
		SeatSelected: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.UnitPrice)
	assert.Equal(t, 200.0, quote.AdultsTotal)
	assert.Equal(t, 50.0, quote.ChildrenTotal)
	assert.Equal(t, 50.0, quote.SeatFee)
	assert.Equal(t, 300.0, quote.Total)
	assert.Equal(t, 6, quote.Remaining)
	assert.True(t, quote.HasDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteBusTourWithoutDatesIsNotBookable(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectQuery(`SELECT .* FROM "packages"`).
		WillReturnRows(packageRows(1, 90, 0, true))
	mock.ExpectQuery(`SELECT .* FROM "bookings" WHERE package_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "adults"}))
	mock.ExpectQuery(`SELECT .* FROM "package_dates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "max_people"}))

	quote, err := service.Quote(dto.QuoteRequest{PackageID: 1, Adults: 2})

	require.NoError(t, err)
	assert.False(t, quote.HasDates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteUnknownPackage(t *testing.T) {
	service, mock := newTestBookingService(t)

	mock.ExpectQuery(`SELECT .* FROM "packages"`).
		WillReturnError(gorm.ErrRecordNotFound)

	quote, err := service.Quote(dto.QuoteRequest{PackageID: 99, Adults: 1})

	assert.Nil(t, quote)
	assert.Equal(t, apperrors.ErrPackageNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
