package domain

import (
	"encoding/json"
	"testing"
)

func mustAmount(t *testing.T, s string) Amount {
	t.Helper()
	a, err := NewAmountFromString(s)
	if err != nil {
		t.Fatalf("NewAmountFromString(%q): %v", s, err)
	}
	return a
}

func TestNewAmountFromCents(t *testing.T) {
	a := NewAmountFromCents(2999)
	if a.String() != "29.99" {
		t.Fatalf("expected 29.99, got %s", a)
	}
}

func TestNewAmountFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := mustAmount(t, "12.5")
		if !a.Equal(NewAmount(12.5)) {
			t.Fatalf("expected 12.5, got %s", a)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := NewAmountFromString("twelve"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestAmount_Add(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"positive + positive", "1.00", "2.00", "3"},
		{"zero + positive", "0", "5", "5"},
		{"fractions stay exact", "0.1", "0.2", "0.3"},
		{"negative result", "-5", "2", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustAmount(t, tt.a).Add(mustAmount(t, tt.b))
			if !got.Equal(mustAmount(t, tt.want)) {
				t.Errorf("(%s).Add(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAmount_Sub(t *testing.T) {
	got := NewAmount(10).Sub(NewAmount(36))
	if !got.Equal(NewAmount(-26)) {
		t.Fatalf("expected -26, got %s", got)
	}
	if !got.IsNegative() {
		t.Fatal("expected negative amount")
	}
}

func TestAmount_Multiply(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    int
		want string
	}{
		{"simple multiply", "12", 3, "36"},
		{"multiply by zero", "5", 0, "0"},
		{"multiply by one", "29.99", 1, "29.99"},
		{"fractional price", "0.1", 3, "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustAmount(t, tt.a).Multiply(tt.b)
			if !got.Equal(mustAmount(t, tt.want)) {
				t.Errorf("(%s).Multiply(%d) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAmount_ZeroValue(t *testing.T) {
	var a Amount
	if !a.IsZero() {
		t.Fatal("zero value should be zero")
	}
	if a.IsPositive() || a.IsNegative() {
		t.Fatal("zero value should have no sign")
	}
	if got := a.Add(NewAmount(3)); !got.Equal(NewAmount(3)) {
		t.Fatalf("expected 3, got %s", got)
	}
}

func TestAmount_Format(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		currency string
		want     string
	}{
		{"dollars", NewAmount(36), "USD", "$36.00"},
		{"rounds to cents", mustAmount(t, "1.005"), "USD", "$1.01"},
		{"negative", NewAmount(-26), "USD", "-$26.00"},
		{"euros", NewAmount(12.5), "EUR", "€12.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.amount.Format(tt.currency); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.currency, got, tt.want)
			}
		})
	}
}

func TestAmount_JSON(t *testing.T) {
	type wrapper struct {
		Price Amount `json:"price"`
	}

	data, err := json.Marshal(wrapper{Price: NewAmount(12.5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"price":"12.5"}` {
		t.Fatalf("unexpected json %s", data)
	}

	var w wrapper
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !w.Price.Equal(NewAmount(12.5)) {
		t.Fatalf("expected 12.5, got %s", w.Price)
	}
}
