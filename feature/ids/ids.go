package ids

import (
	"encoding/hex"
	"errors"

	"github.com/rs/xid"
)

// MaxBatch caps how many IDs one request may generate.
const MaxBatch = 1000

// ErrBatchSize is returned for a count outside 1..MaxBatch.
var ErrBatchSize = errors.New("count must be between 1 and 1000")

// New returns a fresh object ID: 24 lower-case hex characters whose first
// four bytes are the creation time, like the IDs the game itself uses.
func New() string {
	return hex.EncodeToString(xid.New().Bytes())
}

// NewN returns n fresh IDs in creation order.
func NewN(n int) ([]string, error) {
	if n < 1 || n > MaxBatch {
		return nil, ErrBatchSize
	}
	out := make([]string, n)
	for i := range out {
		out[i] = New()
	}
	return out, nil
}
