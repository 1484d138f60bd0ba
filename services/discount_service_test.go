package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeactivateExpired(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDiscountService(db, nil)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "to_date", "status"}).
		AddRow(1, "Old promo", "OLD10", "01/01/2020", 1).
		AddRow(2, "Running promo", "RUN10", "31/12/2099", 1).
		AddRow(3, "Broken row", "BAD10", "not-a-date", 1)

	mock.ExpectQuery(`SELECT .* FROM "discounts" WHERE status`).
		WillReturnRows(rows)

	// Only the expired row gets flipped; the unparseable one is skipped.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "discounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.DeactivateExpired(nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateExpiredNothingToDo(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDiscountService(db, nil)

	mock.ExpectQuery(`SELECT .* FROM "discounts" WHERE status`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "to_date", "status"}))

	err := service.DeactivateExpired(nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
