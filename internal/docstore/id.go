package docstore

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLen  = 9
	maxIDRetries = 5
)

// IDGenerator produces a new record id for the given instant.
type IDGenerator func(now time.Time) string

// LegacyID joins the unix millisecond timestamp with nine random base36
// characters. The random part is not cryptographic; uniqueness is enforced by
// the stores on insert.
func LegacyID(now time.Time) string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}
