package orders

import (
	"math/rand/v2"
	"strings"
)

// Ambiguous characters (0/O, 1/I/L) are excluded so the number can be read
// over the phone.
const orderNumberAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const orderNumberLength = 8

// NewOrderNumber generates a human-shareable order identifier such as
// "GFT-7K2MQ9XR". It is distinct from the database primary key and is not a
// security token; 31^8 combinations keep collisions negligible at the
// expected order volume, and the unique index catches the rest.
func NewOrderNumber(prefix string) string {
	var sb strings.Builder
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('-')
	}
	for i := 0; i < orderNumberLength; i++ {
		sb.WriteByte(orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))])
	}
	return sb.String()
}
