package repoargs

import (
	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	maxPercentage  = decimal.NewFromInt(100)
	maxRedeemValue = decimal.RequireFromString("99999999.99")
)

type DiscountCreate struct {
	IssuerID    int64
	RecipientID int64
	Percentage  decimal.Decimal
	RedeemLimit decimal.Decimal
}

// Validate проверяет инварианты скидки до записи в хранилище. Возвращает *domain.ValidationError.
func (d DiscountCreate) Validate() error {
	if d.IssuerID == d.RecipientID {
		return domain.NewValidationError("recipient", "cannot issue discount to yourself")
	}
	if !d.Percentage.IsPositive() || d.Percentage.GreaterThan(maxPercentage) {
		return domain.NewValidationError("percentage", "must be greater than 0 and at most 100")
	}
	if !hasMaxScale(d.Percentage, 2) {
		return domain.NewValidationError("percentage", "at most 2 decimal places allowed")
	}
	return ValidateAmount("redeem_limit", d.RedeemLimit, true)
}

// ValidateAmount проверяет денежное значение под колонку numeric(10,2). allowZero разрешает 0.
func ValidateAmount(field string, amount decimal.Decimal, allowZero bool) error {
	if amount.IsNegative() || (!allowZero && amount.IsZero()) {
		if allowZero {
			return domain.NewValidationError(field, "must not be negative")
		}
		return domain.NewValidationError(field, "must be positive")
	}
	if !hasMaxScale(amount, 2) {
		return domain.NewValidationError(field, "at most 2 decimal places allowed")
	}
	if amount.GreaterThan(maxRedeemValue) {
		return domain.NewValidationError(field, "value is too large")
	}
	return nil
}

type DiscountFilter struct {
	UserID    int64
	Direction domain.DiscountDirection
	// Query поиск подстроки в названии бизнеса любой из сторон, без учета регистра.
	Query string
}

func hasMaxScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
