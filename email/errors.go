package email

import "errors"

// Sentinel errors returned by email validation.
//
// Use [errors.Is] for comparisons; the returned errors wrap these sentinels
// with detail about the failing value:
//
//	_, err := email.Build("a", "b")
//	if errors.Is(err, email.ErrLength) {
//	    // combined length outside [MinLength, MaxLength]
//	}
var (
	// ErrLength is returned when the combined length of local part and
	// domain falls outside [MinLength, MaxLength].
	ErrLength = errors.New("email: combined length out of range")

	// ErrFormat is returned by [Parse] when the input does not have the
	// shape local@domain with valid character classes on both sides.
	ErrFormat = errors.New("email: malformed address")

	// ErrUsername is returned when a local part contains characters outside
	// [A-Za-z0-9_.+-] or is empty.
	ErrUsername = errors.New("email: invalid username")

	// ErrDomain is returned when a domain is not at least two dot-separated
	// labels of [A-Za-z0-9-] characters.
	ErrDomain = errors.New("email: invalid domain")
)
