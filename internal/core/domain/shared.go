package domain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is an exact monetary value expressed in major units.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{value: decimal.NewFromFloat(value)}
}

func NewAmountFromCents(cents int64) Amount {
	return Amount{value: decimal.New(cents, -2)}
}

func NewAmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value)}
}

func (a Amount) Multiply(b int) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(int64(b)))}
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// Float64 is lossy, use it for display only.
func (a Amount) Float64() float64 {
	return a.value.InexactFloat64()
}

func (a Amount) String() string {
	return a.value.String()
}

// Format renders the amount in the given ISO currency, rounded to the
// currency's fraction digits.
func (a Amount) Format(currency string) string {
	// money.New never returns a nil currency, even for unknown codes.
	cur := money.New(0, currency).Currency()
	if cur.Template == "" {
		return a.value.StringFixed(int32(cur.Fraction)) + " " + currency
	}
	minor := a.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.value.UnmarshalJSON(data)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
