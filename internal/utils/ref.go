package utils

import (
	"math/rand"
	"strings"
)

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingReference generates a booking reference like "TM-8F2KQ01A".
func NewBookingReference() string {
	return "TM-" + randomUpper(8)
}

// NewDiscountCode generates a loyalty discount code like "LOYAL15-X3K9QM".
func NewDiscountCode() string {
	return "LOYAL15-" + randomUpper(6)
}

func randomUpper(n int) string {
	var out strings.Builder
	out.Grow(n)
	for i := 0; i < n; i++ {
		out.WriteByte(refCharset[rand.Intn(len(refCharset))])
	}
	return out.String()
}
