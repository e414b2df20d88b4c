package usecases

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Validity windows for one-time codes
const (
	LoginCodeTTL         = 10 * time.Minute
	PasswordResetCodeTTL = 10 * time.Minute
	EmailChangeCodeTTL   = 15 * time.Minute
)

var codeRange = big.NewInt(900000)

var randomInt = func(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}

// generateCode produces a uniform 6-digit code in [100000, 999999] and its
// expiry. The leading digit is never zero so the code survives any
// string/number round trip intact.
func generateCode(ttl time.Duration) (string, time.Time, error) {
	n, err := randomInt(codeRange)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	return code, time.Now().Add(ttl), nil
}
