package password

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by password validation.
//
// Use [errors.Is] for comparisons. The data-carrying failures
// ([LengthError], [StrengthError]) match their sentinel through errors.Is
// and expose their detail through errors.As:
//
//	_, err := password.New(input).Check()
//	var lenErr *password.LengthError
//	if errors.As(err, &lenErr) {
//	    msg = fmt.Sprintf("needs at least %d characters", lenErr.Min)
//	}
var (
	// ErrTooShort is returned when a candidate is shorter than the policy's
	// minimum length. The concrete error is a [LengthError].
	ErrTooShort = errors.New("password: shorter than required minimum length")

	// ErrTooWeak is returned when the entropy score is below the required
	// strength tier. The concrete error is a [StrengthError].
	ErrTooWeak = errors.New("password: below required strength")

	// ErrBlank is returned by the entropy oracle for an empty candidate,
	// and by Raw text unmarshalling for empty input.
	ErrBlank = errors.New("password: blank")

	// ErrEntropy is returned when the entropy oracle fails internally.
	ErrEntropy = errors.New("password: entropy estimate failed")

	// ErrNotEncrypted is returned by [FromEncrypted] when the input does not
	// have the shape of adaptive-hash output.
	ErrNotEncrypted = errors.New("password: value is not an encrypted hash")
)

// LengthError reports a candidate shorter than the policy minimum. It
// matches [ErrTooShort] under errors.Is.
type LengthError struct {
	// Min is the policy's required minimum length.
	Min int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("password: must be at least %d characters", e.Min)
}

func (e *LengthError) Is(target error) bool { return target == ErrTooShort }

// StrengthError reports an entropy score below the required tier. It
// matches [ErrTooWeak] under errors.Is.
type StrengthError struct {
	// Required is the strength tier the candidate failed to reach.
	Required Strength
}

func (e *StrengthError) Error() string {
	return fmt.Sprintf("password: requires %s strength (zxcvbn score ≥ %d)",
		e.Required, e.Required.Score())
}

func (e *StrengthError) Is(target error) bool { return target == ErrTooWeak }
