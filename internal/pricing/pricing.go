// Package pricing computes order totals. Every function here is pure: the
// checkout preview and the order assembler call the exact same code, so the
// total a customer sees before submitting always matches what is persisted.
package pricing

const (
	feeBase    = 2500
	feeStep    = 1000
	feeBracket = 50000
)

// Quote is the monetary summary of an order. Amounts are whole naira.
type Quote struct {
	SubTotal    int `json:"subTotal"`
	ServiceFee  int `json:"serviceFee"`
	TotalAmount int `json:"totalAmount"`
}

// ServiceFee returns the tiered handling fee for a subtotal: zero at or
// below zero, otherwise a flat base that steps up once per additional
// ₦50,000 bracket of merchandise value.
func ServiceFee(subTotal int) int {
	if subTotal <= 0 {
		return 0
	}
	bracket := (subTotal - 1) / feeBracket
	return feeBase + bracket*feeStep
}

// Price aggregates resolved line totals into a Quote.
func Price(lineTotals []int) Quote {
	subTotal := 0
	for _, total := range lineTotals {
		subTotal += total
	}
	fee := ServiceFee(subTotal)
	return Quote{
		SubTotal:    subTotal,
		ServiceFee:  fee,
		TotalAmount: subTotal + fee,
	}
}
