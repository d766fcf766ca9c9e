package service

import (
	"github.com/shopspring/decimal"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
)

var (
	earlyRefundRate = decimal.NewFromFloat(0.90)
	lateRefundRate  = decimal.NewFromFloat(0.50)
)

// Refund computes the amount returned to the passenger on cancellation. The
// tier depends only on whole calendar days between the cancellation date and
// the journey date; time of day never enters. More than two days out refunds
// 90% of the fare, one or two days out refunds 50%, and the journey day or
// later refunds nothing. The result is rounded to two decimals, half-up.
func Refund(totalFare decimal.Decimal, journeyDate, today entity.CivilDate) decimal.Decimal {
	daysUntil := journeyDate.DaysSince(today)

	switch {
	case daysUntil > 2:
		return totalFare.Mul(earlyRefundRate).Round(2)
	case daysUntil > 0:
		return totalFare.Mul(lateRefundRate).Round(2)
	default:
		return decimal.Zero.Round(2)
	}
}
