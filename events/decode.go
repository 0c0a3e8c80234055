package events

import (
	"encoding/base64"
	"strings"
)

// Decode base64-decodes s. Attribute values are base64 on some daemon
// versions and plain text on others, so anything that does not decode is
// returned as its own bytes.
func Decode(s string) []byte {
	bz, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return []byte(s)
	}
	return bz
}

// DisplayString converts bytes to text, replacing invalid UTF-8 with U+FFFD.
func DisplayString(bz []byte) string {
	return strings.ToValidUTF8(string(bz), "�")
}
