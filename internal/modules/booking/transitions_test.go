package booking

import (
	"testing"

	"eventagency/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		from, to domain.BookingStatus
		ok       bool
	}{
		{domain.BookingPending, domain.BookingConfirmed, true},
		{domain.BookingPending, domain.BookingCancelled, true},
		{domain.BookingPending, domain.BookingCompleted, false},
		{domain.BookingConfirmed, domain.BookingCompleted, true},
		{domain.BookingConfirmed, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingPending, false},
		{domain.BookingCompleted, domain.BookingCancelled, false},
		{domain.BookingCancelled, domain.BookingPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, canTransitionStatus(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionPayment(t *testing.T) {
	cases := []struct {
		from, to domain.PaymentStatus
		ok       bool
	}{
		{domain.PaymentUnpaid, domain.PaymentPaid, true},
		{domain.PaymentUnpaid, domain.PaymentRefunded, false},
		{domain.PaymentPaid, domain.PaymentRefunded, true},
		{domain.PaymentPaid, domain.PaymentUnpaid, false},
		{domain.PaymentRefunded, domain.PaymentPaid, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, canTransitionPayment(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
