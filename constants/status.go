package constants

// Operator status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Operator roles
const (
	RoleStaff = 1
	RoleAdmin = 2
)

// Payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Discount status
const (
	DiscountStatusInactive = 0
	DiscountStatusActive   = 1
)

// Package categories
var PackageCategories = []string{
	"Cultural",
	"Adventure",
	"Historical",
	"Culinary",
	"Beach",
	"Ski",
	"Eco",
	"Religious",
	"Shopping",
	"Wellness",
	"Photography",
	"Weekend",
	"International",
	"Domestic",
}

// IsValidPaymentStatus reports whether status is one of the payment states.
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// IsValidCategory reports whether name is one of the predefined categories.
func IsValidCategory(name string) bool {
	for _, c := range PackageCategories {
		if c == name {
			return true
		}
	}
	return false
}
