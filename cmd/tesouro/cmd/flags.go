package cmd

import (
	"fmt"
	"time"

	"github.com/rpgo/treasury-calculator/pkg/dateutil"
	money "github.com/rpgo/treasury-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// parseAmount reads a money flag given as a decimal string.
func parseAmount(name, value string) (money.Money, error) {
	m, err := money.NewMoneyFromString(value)
	if err != nil {
		return money.Money{}, fmt.Errorf("--%s: %w", name, err)
	}
	return m, nil
}

// parseRate reads a percentage flag given as a decimal string.
func parseRate(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// parseDate reads a date flag; empty values stay zero.
func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dateutil.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}
