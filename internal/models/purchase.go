package models

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/spendlog/backend/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// PaymentMethod is how a purchase was paid.
//
// swagger:enum PaymentMethod
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentDebitCard     PaymentMethod = "debit_card"
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMobilePayment PaymentMethod = "mobile_payment"
	PaymentOther         PaymentMethod = "other"
)

// PaymentMethods are all valid values for PaymentMethod.
var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentCreditCard, PaymentDebitCard,
	PaymentBankTransfer, PaymentMobilePayment, PaymentOther,
}

// Purchase represents a single recorded expense of a user.
type Purchase struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	CategoryID  uuid.UUID       `gorm:"index"`
	Category    Category        `json:"-"`
	Date        types.Date      // Calendar day of the purchase
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);check:amount_not_negative,amount >= 0"`
	Description string
	Note        string
	Payment     PaymentMethod
	Currency    string // Currency code for the amount, uppercased
	Location    string // Where the purchase was made

	// NormalizedDescription and ImportHash are maintained on every
	// save and used for duplicate detection. Matching on them is a
	// heuristic: bank exports can legitimately contain repeated
	// same-day charges with identical amounts.
	NormalizedDescription string `json:"-"`
	ImportHash            string `json:"-" gorm:"index"`
}

// NormalizeDescription case-folds a description and collapses all
// whitespace runs into single spaces.
func NormalizeDescription(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// PurchaseImportHash computes the duplicate detection hash for a
// purchase. decimal.Decimal.String is canonical ("3.50" and "3.5"
// hash identically).
func PurchaseImportHash(date types.Date, amount decimal.Decimal, description string) string {
	payload := fmt.Sprintf("%s|%s|%s", date, amount, NormalizeDescription(description))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(payload)))
}

// AfterFind normalizes the date to UTC.
func (p *Purchase) AfterFind(tx *gorm.DB) error {
	err := p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.Date = types.DateOf(time.Time(p.Date).In(time.UTC))
	return nil
}

// DefaultCurrency is used for purchases that do not set a currency.
const DefaultCurrency = "USD"

// BeforeSave
//   - trims whitespace from string fields
//   - rejects negative amounts
//   - defaults the payment method, the currency and the date
//   - maintains NormalizedDescription and ImportHash
func (p *Purchase) BeforeSave(_ *gorm.DB) error {
	p.Description = strings.TrimSpace(p.Description)
	p.Note = strings.TrimSpace(p.Note)
	p.Location = strings.TrimSpace(p.Location)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))

	if p.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if p.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if p.Payment == "" {
		p.Payment = PaymentOther
	}

	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	if !slices.Contains(PaymentMethods, p.Payment) {
		return ErrPaymentMethodInvalid
	}

	if p.Date.IsZero() {
		p.Date = types.DateOf(time.Now().In(time.UTC))
	}

	p.NormalizedDescription = NormalizeDescription(p.Description)
	p.ImportHash = PurchaseImportHash(p.Date, p.Amount, p.Description)

	return nil
}

// BeforeCreate verifies that the category belongs to the same user.
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	err := p.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return checkCategoryOwner(tx, p.CategoryID, p.UserID)
}

// BeforeUpdate re-verifies the category reference when it changes and
// keeps the duplicate detection fields in sync with the updated values.
// Partial updates only write the selected fields, so the fields the
// hash is computed from have to be merged with the stored record.
func (p *Purchase) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		if err := checkCategoryOwner(tx, p.CategoryID, p.UserID); err != nil {
			return err
		}
	}

	stored, ok := tx.Statement.Model.(*Purchase)
	if !ok {
		return nil
	}

	date, amount, description := stored.Date, stored.Amount, stored.Description
	if tx.Statement.Changed("Date") {
		date = p.Date
	}
	if tx.Statement.Changed("Amount") {
		amount = p.Amount
	}
	if tx.Statement.Changed("Description") {
		description = p.Description
	}

	tx.Statement.SetColumn("NormalizedDescription", NormalizeDescription(description))
	tx.Statement.SetColumn("ImportHash", PurchaseImportHash(date, amount, description))

	return nil
}
