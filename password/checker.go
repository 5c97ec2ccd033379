package password

import (
	"errors"
	"fmt"
)

// DefaultMinLen is the minimum candidate length enforced by [NewChecker].
const DefaultMinLen = 8

// Checker is a reusable password strength policy: a minimum length plus a
// [Strength] tier evaluated against an entropy [Estimator].
//
// Checkers are immutable values configured builder-style; each setter
// returns a new Checker, so a configured policy can be shared freely:
//
//	strict := password.NewChecker().MinLen(20).Strength(password.StrengthHard)
//
// Checking is a pure function of the policy and the candidate.
type Checker struct {
	minLen    int
	strength  Strength
	estimator Estimator
}

// NewChecker returns the default policy: minimum length [DefaultMinLen] and
// [StrengthDefault], scored by [ZxcvbnEstimator].
func NewChecker() Checker {
	return Checker{
		minLen:    DefaultMinLen,
		strength:  StrengthDefault,
		estimator: ZxcvbnEstimator{},
	}
}

// MinLen returns a copy of the policy with the given minimum length.
func (c Checker) MinLen(n int) Checker {
	c.minLen = n
	return c
}

// Strength returns a copy of the policy with the given required tier.
func (c Checker) Strength(s Strength) Checker {
	c.strength = s
	return c
}

// Estimator returns a copy of the policy backed by a different entropy
// oracle. Useful for swapping in a stub under test or an estimator with
// deployment-specific dictionaries.
func (c Checker) Estimator(e Estimator) Checker {
	c.estimator = e
	return c
}

// Check evaluates a candidate plaintext against the policy.
//
// Checks run cheapest-first: the length gate fails with a [LengthError]
// before the estimator is consulted at all, then the oracle's score is held
// against the tier and fails with a [StrengthError] if below it. On success
// the oracle's full [Entropy] estimate is returned for caller inspection.
func (c Checker) Check(candidate string) (Entropy, error) {
	if len(candidate) < c.minLen {
		return Entropy{}, &LengthError{Min: c.minLen}
	}

	est := c.estimator
	if est == nil {
		est = ZxcvbnEstimator{}
	}
	entropy, err := est.Estimate(candidate, nil)
	if err != nil {
		if errors.Is(err, ErrBlank) || errors.Is(err, ErrEntropy) {
			return Entropy{}, err
		}
		return Entropy{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	if entropy.Score < c.strength.Score() {
		return Entropy{}, &StrengthError{Required: c.strength}
	}
	return entropy, nil
}
