package mcdigest

import (
	"encoding/hex"
	"strings"
)

// UpperHex renders a digest as uppercase hexadecimal
// with no separators, which is the display form for roots and tags.
func UpperHex(d []byte) string {
	return strings.ToUpper(hex.EncodeToString(d))
}
