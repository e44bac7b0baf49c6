package domain

// DiscountDirection сторона скидки относительно юзера.
type DiscountDirection string

const (
	DiscountsIssued   DiscountDirection = "issued"
	DiscountsReceived DiscountDirection = "received"
)

func (d DiscountDirection) Valid() bool {
	return d == DiscountsIssued || d == DiscountsReceived
}

// CounterField денормализованный счетчик профиля. Значение совпадает с именем колонки в таблице profiles.
type CounterField string

const (
	CounterFollowers         CounterField = "followers_count"
	CounterFollowings        CounterField = "followings_count"
	CounterDiscountsReceived CounterField = "discounts_received_count"
	CounterDiscountsUsed     CounterField = "discounts_used_count"
)

// CounterFields все счетчики профиля в фиксированном порядке.
var CounterFields = []CounterField{
	CounterFollowers,
	CounterFollowings,
	CounterDiscountsReceived,
	CounterDiscountsUsed,
}

func (f CounterField) Valid() bool {
	for _, field := range CounterFields {
		if f == field {
			return true
		}
	}
	return false
}

// CounterDrift расхождение сохраненного значения счетчика с фактическим, найденное при пересчете.
type CounterDrift struct {
	UserID   int64
	Field    CounterField
	Stored   int64
	Computed int64
}
