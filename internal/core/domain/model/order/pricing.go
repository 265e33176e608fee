package order

import "marketplace/internal/core/domain/model/kernel"

// Pricing constants. All three are exact decimal literals applied through
// kernel.Money so derived amounts never drift.
const (
	// TaxRate is the flat tax rate applied to every order subtotal.
	TaxRate = "0.08"

	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The boundary is strict: a subtotal of exactly 499 still pays the fee.
	FreeShippingThreshold = "499"

	// ShippingFee is the flat fee charged below the free-shipping threshold.
	ShippingFee = "5.99"
)

// SubtotalFor sums unitPrice x quantity over the line items.
func SubtotalFor(items []LineItem) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

// TaxFor derives the tax amount from a subtotal.
func TaxFor(subtotal kernel.Money) kernel.Money {
	return subtotal.MulRate(TaxRate)
}

// ShippingFor derives the shipping charge from a subtotal: zero above the
// free-shipping threshold, the flat fee otherwise.
func ShippingFor(subtotal kernel.Money) kernel.Money {
	threshold, _ := kernel.NewMoneyFromString(FreeShippingThreshold)
	if subtotal.GreaterThan(threshold) {
		return kernel.ZeroMoney()
	}
	fee, _ := kernel.NewMoneyFromString(ShippingFee)
	return fee
}
