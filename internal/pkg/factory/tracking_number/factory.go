package tracking_number

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const prefix = "SFC"

type Factory struct {
	mu      sync.Mutex
	entropy io.Reader
}

func New() *Factory {
	return &Factory{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a globally unique, time ordered tracking number.
func (f *Factory) Next(now time.Time) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return prefix + ulid.MustNew(ulid.Timestamp(now), f.entropy).String()
}
