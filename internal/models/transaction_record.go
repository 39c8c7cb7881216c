package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord represents one payment-card transaction of a merchant
type TransactionRecord struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	ClientID        int64           `gorm:"not null;index" json:"-"`
	MerchantID      int64           `gorm:"not null;index" json:"merchantId"`
	TerminalID      int64           `gorm:"not null" json:"terminalId"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transactionDate"`
	VoucherNumber   *string         `gorm:"type:varchar(50);index" json:"voucherNumber"`
	ExpiredDate     time.Time       `gorm:"not null" json:"expiredDate"`
	Description     *string         `gorm:"type:text" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	MerchantName    *string         `gorm:"type:varchar(255)" json:"merchantName"`
	TotalCount      *int64          `gorm:"-" json:"totalCount"`
}

// TableName returns the table name for TransactionRecord
func (t *TransactionRecord) TableName() string {
	return "transaction_records"
}

// MonthBucket returns the "YYYY-MM" bucket of the transaction date,
// or an empty string when the date is unset
func (t *TransactionRecord) MonthBucket() string {
	if t.TransactionDate.IsZero() {
		return ""
	}
	return FormatMonthBucket(t.TransactionDate)
}

// HasVoucher reports whether a voucher number was assigned
func (t *TransactionRecord) HasVoucher() bool {
	return t.VoucherNumber != nil
}

// Clone returns a copy the caller may mutate without affecting the original
func (t TransactionRecord) Clone() TransactionRecord {
	clone := t
	clone.VoucherNumber = copyString(t.VoucherNumber)
	clone.Description = copyString(t.Description)
	clone.MerchantName = copyString(t.MerchantName)
	if t.TotalCount != nil {
		count := *t.TotalCount
		clone.TotalCount = &count
	}
	return clone
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	return StringPtr(*s)
}

// FormatMonthBucket renders a time as its "YYYY-MM" month bucket
func FormatMonthBucket(t time.Time) string {
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}

// StringPtr is a helper for optional text fields
func StringPtr(s string) *string {
	return &s
}
