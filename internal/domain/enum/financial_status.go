package enum

import (
	"database/sql/driver"
	"fmt"
)

// FinancialStatus represents the payment state of an order as reported
// by the commerce platform
type FinancialStatus string

const (
	FinancialStatusPending           FinancialStatus = "pending"
	FinancialStatusAuthorized        FinancialStatus = "authorized"
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
	FinancialStatusVoided            FinancialStatus = "voided"
)

func (s FinancialStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the recognized values
func (s FinancialStatus) Valid() bool {
	switch s {
	case FinancialStatusPending,
		FinancialStatusAuthorized,
		FinancialStatusPaid,
		FinancialStatusPartiallyPaid,
		FinancialStatusRefunded,
		FinancialStatusPartiallyRefunded,
		FinancialStatusVoided:
		return true
	}
	return false
}

// ParseFinancialStatus converts a raw string into a FinancialStatus
func ParseFinancialStatus(raw string) (FinancialStatus, error) {
	s := FinancialStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown financial status %q", raw)
	}
	return s, nil
}

func (s FinancialStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *FinancialStatus) Scan(value interface{}) error {
	if value == nil {
		*s = FinancialStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = FinancialStatus(v)
	case []byte:
		*s = FinancialStatus(v)
	}
	return nil
}
