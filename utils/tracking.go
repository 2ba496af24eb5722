package utils

import (
	"crypto/rand"
	"fmt"
)

// alphabet avoids 0/O and 1/I so the code survives being read aloud
const trackingAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// NewTrackingNumber returns a customer-facing order code like CRML-8X29A.
func NewTrackingNumber() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return fmt.Sprintf("CRML-%s", buf)
}
