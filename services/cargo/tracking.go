package cargo

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateTrackingNumber produces the customer-facing shipment identifier:
// day, month, two-digit year, hour, minute, second and a two-digit random
// suffix, concatenated without separators (14 digits total).
//
// One-second clock resolution plus the random suffix keeps collisions rare at
// normal creation rates; the unique constraint on the tracking_number column
// is the actual correctness backstop.
func GenerateTrackingNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return "", fmt.Errorf("failed to draw random suffix: %w", err)
	}

	return fmt.Sprintf("%02d%02d%02d%02d%02d%02d%02d",
		now.Day(),
		int(now.Month()),
		now.Year()%100,
		now.Hour(),
		now.Minute(),
		now.Second(),
		n.Int64(),
	), nil
}
