package password

import (
	"fmt"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// Strength is an ordered tier mapping to a minimum zxcvbn entropy score.
// Higher tiers demand more guess-resistance.
type Strength int

const (
	// StrengthLow accepts anything scoring at least 2 — resists throttled
	// online attacks only.
	StrengthLow Strength = 2

	// StrengthDefault accepts scores of at least 3 — resists offline
	// attacks against a slow hash. This is the [NewChecker] default.
	StrengthDefault Strength = 3

	// StrengthHard requires the maximum score of 4.
	StrengthHard Strength = 4
)

// Score returns the minimum zxcvbn score (0–4) a candidate must reach to
// satisfy this tier.
func (s Strength) Score() int { return int(s) }

func (s Strength) String() string {
	switch s {
	case StrengthLow:
		return "Low"
	case StrengthDefault:
		return "Default"
	case StrengthHard:
		return "Hard"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// Entropy is the oracle's full strength estimate, returned by
// [Checker.Check] for optional caller inspection (e.g., crack-time feedback
// in a registration form).
type Entropy struct {
	// Score is the guess-resistance rating, 0 (trivial) to 4 (strong).
	Score int

	// Bits is the estimated entropy in bits.
	Bits float64

	// CrackTime is the estimated offline crack time in seconds.
	CrackTime float64

	// CrackTimeDisplay is CrackTime rendered for humans ("3 days").
	CrackTimeDisplay string
}

// Estimator is the entropy-oracle contract. knownPatterns lists
// deployment-specific weak inputs (the user's own name, the site name) that
// the oracle should treat as guessable on top of its built-in dictionaries.
//
// Implementations must be pure: same inputs, same estimate, no side effects.
// A blank candidate fails with [ErrBlank]; internal faults fail with
// [ErrEntropy].
type Estimator interface {
	Estimate(candidate string, knownPatterns []string) (Entropy, error)
}

// ZxcvbnEstimator scores candidates with the zxcvbn dictionary-and-pattern
// estimator. It is stateless; the zero value is ready to use.
type ZxcvbnEstimator struct{}

// Estimate implements [Estimator].
func (ZxcvbnEstimator) Estimate(candidate string, knownPatterns []string) (Entropy, error) {
	if candidate == "" {
		return Entropy{}, ErrBlank
	}
	res := zxcvbn.PasswordStrength(candidate, knownPatterns)
	return Entropy{
		Score:            res.Score,
		Bits:             res.Entropy,
		CrackTime:        res.CrackTime,
		CrackTimeDisplay: res.CrackTimeDisplay,
	}, nil
}
