package booking

import "eventagency/internal/domain"

// statusTransitions is the fulfillment state machine: completed and cancelled
// are terminal. Setting the current value again is always a no-op success.
var statusTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed: {domain.BookingCompleted, domain.BookingCancelled},
	domain.BookingCompleted: {},
	domain.BookingCancelled: {},
}

var paymentTransitions = map[domain.PaymentStatus][]domain.PaymentStatus{
	domain.PaymentUnpaid:   {domain.PaymentPaid},
	domain.PaymentPaid:     {domain.PaymentRefunded},
	domain.PaymentRefunded: {},
}

func canTransitionStatus(from, to domain.BookingStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func canTransitionPayment(from, to domain.PaymentStatus) bool {
	for _, s := range paymentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
