package policy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// MinGeneratedLength is the shortest password [Generate] produces.
	MinGeneratedLength = 12
	// MaxGeneratedLength is the longest password [Generate] produces.
	MaxGeneratedLength = 128

	generateAttempts = 100
)

// ErrGeneratedLength is returned by [Generate] for lengths outside
// [MinGeneratedLength, MaxGeneratedLength].
var ErrGeneratedLength = errors.New("generated password length out of range")

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
)

// Generate returns a random password of length characters that passes
// engine. Every character class is represented; candidates that trip a
// pattern rule are discarded and redrawn.
func Generate(length int, engine *Engine) (string, error) {
	if length < MinGeneratedLength || length > MaxGeneratedLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrGeneratedLength, length, MinGeneratedLength, MaxGeneratedLength)
	}

	for range generateAttempts {
		candidate, err := randomPassword(length)
		if err != nil {
			return "", err
		}
		if engine.Evaluate(candidate).Valid {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not generate a password satisfying the policy in %d attempts", generateAttempts)
}

func randomPassword(length int) (string, error) {
	sets := []string{lowerChars, upperChars, digitChars, Symbols}
	all := lowerChars + upperChars + digitChars + Symbols

	password := make([]byte, 0, length)
	for _, set := range sets {
		ch, err := pickRandomChar(set)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	for len(password) < length {
		ch, err := pickRandomChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

func pickRandomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("random index: %w", err)
	}
	return set[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("random index: %w", err)
		}
		b[i], b[j.Int64()] = b[j.Int64()], b[i]
	}
	return nil
}
