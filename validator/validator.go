package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"geotrip/constants"
	"geotrip/dto"
	"geotrip/errors"
	"geotrip/models"
)

// FieldErrors maps a form field name to its validation message. Failures are
// surfaced inline per field and never raised as Go errors to the caller.
type FieldErrors map[string]string

func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

var (
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

	// Georgian mobile number: optional +995/995 prefix, nine digits, the
	// subscriber part starting with 5-9.
	georgianPhoneRegex = regexp.MustCompile(`^(\+995|995)?[5-9]\d{8}$`)

	// Georgian personal ID: exactly eleven digits.
	idNumberRegex = regexp.MustCompile(`^\d{11}$`)

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	MinAdults   = 1
	MaxAdults   = 20
	MinChildren = 0
	MaxChildren = 20
)

// ValidateBookingRequest applies the field-level rules to a booking form
// submission. The email is lowercased and all string fields are trimmed in
// place. Cross-field capacity rules live in ValidateCapacity because they
// need the package snapshot.
func ValidateBookingRequest(req *dto.CreateBookingRequest) FieldErrors {
	errs := FieldErrors{}

	if req.PackageID == 0 {
		errs.Add("packageId", "Please select a package")
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 {
		errs.Add("name", "Name must be at least 2 characters")
	} else if len(req.Name) > 100 {
		errs.Add("name", "Name must be less than 100 characters")
	} else if !nameRegex.MatchString(req.Name) {
		errs.Add("name", "Name can only contain letters, spaces, hyphens, and apostrophes")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		errs.Add("email", "Email is required")
	} else if !emailRegex.MatchString(req.Email) {
		errs.Add("email", "Please enter a valid email address")
	}

	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone != "" && !georgianPhoneRegex.MatchString(req.Phone) {
		errs.Add("phone", "Please enter a valid Georgian phone number (e.g. +995 5XX XXX XXX)")
	}

	req.IDNumber = strings.TrimSpace(req.IDNumber)
	if !idNumberRegex.MatchString(req.IDNumber) {
		errs.Add("idNumber", "ID number must be exactly 11 digits")
	}

	if req.Adults < MinAdults {
		errs.Add("adults", fmt.Sprintf("At least %d adult is required", MinAdults))
	} else if req.Adults > MaxAdults {
		errs.Add("adults", fmt.Sprintf("Maximum %d adults allowed", MaxAdults))
	}

	if req.Children < MinChildren {
		errs.Add("children", "Number of children cannot be negative")
	} else if req.Children > MaxChildren {
		errs.Add("children", fmt.Sprintf("Maximum %d children allowed", MaxChildren))
	}

	if req.TotalPrice <= 0 {
		errs.Add("totalPrice", "Total price must be positive")
	}

	return errs
}

// ValidateCapacity applies the cross-field capacity rule: the requested head
// count must fit in the remaining capacity of the package or date
// occurrence. The error attaches to the adults field and reports both the
// requested total and the maximum, so the form can show exactly what failed.
func ValidateCapacity(adults, children, remaining int) FieldErrors {
	errs := FieldErrors{}
	total := adults + children
	if total > remaining {
		errs.Add("adults", fmt.Sprintf("Total travelers (%d) exceed the maximum allowed (%d)", total, remaining))
	}
	return errs
}

// ValidatePackage checks an admin package create/update payload.
func ValidatePackage(pkg *models.Package) error {
	if pkg.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if err := pkg.ValidatePrice(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, err.Error(), nil)
	}
	if err := pkg.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidCapacity, err.Error(), nil)
	}
	if pkg.Category != "" && !constants.IsValidCategory(pkg.Category) {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, "Unknown category: "+pkg.Category, nil)
	}
	if pkg.LocationID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Location is required", nil)
	}
	return nil
}

// ValidatePackageDates checks a replace-all dates payload for a bus tour.
func ValidatePackageDates(dates []models.PackageDate) error {
	for i := range dates {
		if err := dates[i].Validate(); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
		}
	}
	return nil
}

// ValidateDiscount checks a discount create/update payload.
func ValidateDiscount(discount *models.Discount) error {
	if discount.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Discount name is required", nil)
	}

	if discount.Discount < 0 || discount.Discount > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Discount must be between 0 and 100", nil)
	}

	fromDate, err := time.Parse("02/01/2006", discount.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid start date format", err)
	}

	toDate, err := time.Parse("02/01/2006", discount.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid end date format", err)
	}

	if !toDate.After(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must be after start date", nil)
	}

	if discount.Quantity < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Discount quantity cannot be negative", nil)
	}

	return nil
}

// ValidateLocation checks a location payload.
func ValidateLocation(location *models.Location) error {
	if location.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Location name is required", nil)
	}
	if location.Country == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Country is required", nil)
	}
	return nil
}

// ValidateBus checks a bus payload.
func ValidateBus(bus *models.Bus) error {
	if bus.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Bus name is required", nil)
	}
	if err := bus.ValidateSeatCount(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if bus.PackageID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Package is required", nil)
	}
	return nil
}
