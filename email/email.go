package email

import (
	"fmt"
	"regexp"
)

const (
	// MinLength is the smallest accepted combined length of local part and
	// domain ("a@b.co" is the shortest plausible address).
	MinLength = 6

	// MaxLength is the largest accepted combined length, per the RFC 5321
	// limit on forward/reverse paths.
	MaxLength = 254
)

// Compiled once at package init; all three patterns are fully anchored so
// Parse and Build enforce identical character classes.
var (
	usernameRE = regexp.MustCompile(`^[A-Za-z0-9_.+-]+$`)
	domainRE   = regexp.MustCompile(`^[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)
	addressRE  = regexp.MustCompile(`^(?P<local>[A-Za-z0-9_.+-]+)@(?P<domain>[A-Za-z0-9-]+\.[A-Za-z0-9-.]+)$`)
)

// Email is a validated email address split into its local part and domain.
//
// The zero value is not a valid Email; obtain one through [Build], [Parse],
// or text unmarshalling. Email is a comparable value type and safe to copy
// and share; only the setters mutate, and they re-validate.
type Email struct {
	local  string
	domain string
}

func checkLen(n int) error {
	if n < MinLength || n > MaxLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLength, n, MinLength, MaxLength)
	}
	return nil
}

func checkUsername(username string) error {
	if !usernameRE.MatchString(username) {
		return fmt.Errorf("%w: %q", ErrUsername, username)
	}
	return nil
}

func checkDomain(domain string) error {
	if !domainRE.MatchString(domain) {
		return fmt.Errorf("%w: %q", ErrDomain, domain)
	}
	return nil
}

// Build constructs an [Email] from its two parts.
//
// The combined length is checked first, then the username's character class,
// then the domain's; the first failing check decides the returned error.
func Build(username, domain string) (Email, error) {
	if err := checkLen(len(username) + len(domain)); err != nil {
		return Email{}, err
	}
	if err := checkUsername(username); err != nil {
		return Email{}, err
	}
	if err := checkDomain(domain); err != nil {
		return Email{}, err
	}
	return Email{local: username, domain: domain}, nil
}

// Parse constructs an [Email] from a full "local@domain" string.
//
// The overall length is checked against [MinLength, MaxLength] before
// matching, and the captured parts' combined length is re-checked afterwards
// so the invariant holds regardless of construction path. The combined
// pattern is the conjunction of the per-part checks used by [Build], so the
// captured groups need no second character-class pass.
func Parse(s string) (Email, error) {
	if err := checkLen(len(s)); err != nil {
		return Email{}, err
	}
	m := addressRE.FindStringSubmatch(s)
	if m == nil {
		return Email{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	local := m[addressRE.SubexpIndex("local")]
	domain := m[addressRE.SubexpIndex("domain")]
	if err := checkLen(len(local) + len(domain)); err != nil {
		return Email{}, err
	}
	return Email{local: local, domain: domain}, nil
}

// Username returns the local part of the address.
func (e Email) Username() string { return e.local }

// Local is an alias for [Email.Username].
func (e Email) Local() string { return e.local }

// Domain returns the domain part of the address.
func (e Email) Domain() string { return e.domain }

// SetUsername replaces the local part. The new part's character class and
// the resulting combined length are both re-validated; on error the Email is
// left unchanged.
func (e *Email) SetUsername(username string) error {
	if err := checkUsername(username); err != nil {
		return err
	}
	if err := checkLen(len(username) + len(e.domain)); err != nil {
		return err
	}
	e.local = username
	return nil
}

// SetDomain replaces the domain. The new part's character class and the
// resulting combined length are both re-validated; on error the Email is
// left unchanged.
func (e *Email) SetDomain(domain string) error {
	if err := checkDomain(domain); err != nil {
		return err
	}
	if err := checkLen(len(e.local) + len(domain)); err != nil {
		return err
	}
	e.domain = domain
	return nil
}

// String renders the address as "local@domain". It round-trips through
// [Parse].
func (e Email) String() string {
	return e.local + "@" + e.domain
}

// MarshalText implements [encoding.TextMarshaler]. An Email serialises as
// its "local@domain" rendering, so JSON encodes it as a bare string.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] by delegating to
// [Parse], so decoding enforces the same validation as construction.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
