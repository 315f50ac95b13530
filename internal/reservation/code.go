package reservation

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// codeAlphabet is the base-36 alphabet the random code segments draw from.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// segmentLength is the length of each random code segment. Short enough to
// type, long enough that accidental collision across a small catalogue is not
// a user-facing concern.
const segmentLength = 4

// CodePrefix derives the code prefix from a product id by upper-casing it and
// stripping the vendor namespace token, e.g. "mb_student" -> "STUDENT".
func CodePrefix(productID, vendorToken string) string {
	return strings.Replace(strings.ToUpper(productID), strings.ToUpper(vendorToken), "", 1)
}

// NewCode generates an activation code of the form PREFIX-XXXX-YYYY with two
// independent random base-36 segments. Codes are not checked for uniqueness
// against previously issued ones; a store-backed reserver would add that.
func NewCode(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, randomSegment(), randomSegment())
}

func randomSegment() string {
	b := make([]byte, segmentLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
