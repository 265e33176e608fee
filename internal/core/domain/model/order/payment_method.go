package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is the closed set of payment instruments an order can carry.
// When the wallet-payment flag is set at creation the application layer forces
// Wallet regardless of the submitted value; the domain only validates
// membership in the set.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentWallet is the marketplace wallet balance.
	PaymentWallet

	// PaymentCard is a debit or credit card.
	PaymentCard

	// PaymentUPI is a UPI transfer.
	PaymentUPI
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "unknown",
		PaymentCash:    "cash",
		PaymentWallet:  "wallet",
		PaymentCard:    "card",
		PaymentUPI:     "upi",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash:   "cash",
		PaymentWallet: "wallet",
		PaymentCard:   "card",
		PaymentUPI:    "upi",
	}
}

// PaymentMethodFromString parses a wire string ("cash", "wallet", "card",
// "upi") into a PaymentMethod. Returns an error for anything else.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a supported payment method", s))
}

// Validate checks if the PaymentMethod is a member of the closed set.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
