package ledger

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a transcript by its trimmed content.
func Fingerprint(text string) string {
	return strconv.FormatUint(xxhash.Sum64String(strings.TrimSpace(text)), 16)
}
