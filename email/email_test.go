package email_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-credential-utils/email"
)

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_Valid(t *testing.T) {
	cases := []struct {
		username, domain string
	}{
		{"john", "example.com"},
		{"john.doe+tag", "example.co.uk"},
		{"a_b-c", "sub-domain.example.org"},
		{"1", "2.dev"},
	}
	for _, tc := range cases {
		e, err := email.Build(tc.username, tc.domain)
		if err != nil {
			t.Errorf("Build(%q, %q): %v", tc.username, tc.domain, err)
			continue
		}
		if e.Username() != tc.username || e.Domain() != tc.domain {
			t.Errorf("Build(%q, %q) = %q@%q", tc.username, tc.domain, e.Username(), e.Domain())
		}
	}
}

func TestBuild_CombinedLengthOutOfRange(t *testing.T) {
	if _, err := email.Build("a", "b"); !errors.Is(err, email.ErrLength) {
		t.Errorf("short: expected ErrLength, got %v", err)
	}

	longLocal := strings.Repeat("a", 250)
	if _, err := email.Build(longLocal, "example.com"); !errors.Is(err, email.ErrLength) {
		t.Errorf("long: expected ErrLength, got %v", err)
	}
}

func TestBuild_LengthCheckedBeforeFormat(t *testing.T) {
	// Both parts are garbage, but the combined length fails first.
	if _, err := email.Build("!", "?"); !errors.Is(err, email.ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}
}

func TestBuild_InvalidParts(t *testing.T) {
	if _, err := email.Build("john doe", "example.com"); !errors.Is(err, email.ErrUsername) {
		t.Errorf("space in username: expected ErrUsername, got %v", err)
	}
	if _, err := email.Build("", "example.com"); !errors.Is(err, email.ErrUsername) {
		t.Errorf("empty username: expected ErrUsername, got %v", err)
	}
	if _, err := email.Build("john", "localhost"); !errors.Is(err, email.ErrDomain) {
		t.Errorf("dotless domain: expected ErrDomain, got %v", err)
	}
	if _, err := email.Build("john", "exa mple.com"); !errors.Is(err, email.ErrDomain) {
		t.Errorf("space in domain: expected ErrDomain, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Parse
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_Valid(t *testing.T) {
	e, err := email.Parse("example@example.com")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.Username() != "example" {
		t.Errorf("Username() = %q, want %q", e.Username(), "example")
	}
	if e.Domain() != "example.com" {
		t.Errorf("Domain() = %q, want %q", e.Domain(), "example.com")
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"example.com", email.ErrFormat},   // no @
		{"@example.com", email.ErrFormat},  // empty local part
		{"example@", email.ErrFormat},      // empty domain
		{"a@b@c.com", email.ErrFormat},     // two @
		{"john@localhost", email.ErrFormat}, // dotless domain
		{"a@b.c", email.ErrLength},
		{strings.Repeat("a", 250) + "@example.com", email.ErrLength},
	}
	for _, tc := range cases {
		if _, err := email.Parse(tc.in); !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q): expected %v, got %v", tc.in, tc.want, err)
		}
	}
}

func TestParse_RoundTripsWithBuild(t *testing.T) {
	pairs := [][2]string{
		{"john", "example.com"},
		{"jane.doe+spam", "mail.example.co.uk"},
		{"under_score", "a-b.io"},
	}
	for _, p := range pairs {
		built, err := email.Build(p[0], p[1])
		if err != nil {
			t.Fatalf("Build(%q, %q): %v", p[0], p[1], err)
		}
		parsed, err := email.Parse(built.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", built.String(), err)
		}
		if parsed != built {
			t.Errorf("round trip changed value: %v != %v", parsed, built)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Setters
// ──────────────────────────────────────────────────────────────────────────────

func TestSetUsername(t *testing.T) {
	e, _ := email.Build("john", "example.com")

	if err := e.SetUsername("jane"); err != nil {
		t.Fatalf("SetUsername: %v", err)
	}
	if e.String() != "jane@example.com" {
		t.Fatalf("got %q", e.String())
	}

	if err := e.SetUsername("two words"); !errors.Is(err, email.ErrUsername) {
		t.Fatalf("expected ErrUsername, got %v", err)
	}
	if e.String() != "jane@example.com" {
		t.Fatal("failed setter must not mutate the value")
	}
}

func TestSetUsername_EnforcesCombinedLength(t *testing.T) {
	e, _ := email.Build("john", "example.com")
	tooLong := strings.Repeat("a", email.MaxLength)
	if err := e.SetUsername(tooLong); !errors.Is(err, email.ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
	if e.Username() != "john" {
		t.Fatal("failed setter must not mutate the value")
	}
}

func TestSetDomain(t *testing.T) {
	e, _ := email.Build("john", "example.com")

	if err := e.SetDomain("example.org"); err != nil {
		t.Fatalf("SetDomain: %v", err)
	}
	if e.Domain() != "example.org" {
		t.Fatalf("got %q", e.Domain())
	}

	if err := e.SetDomain("nodots"); !errors.Is(err, email.ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}

	tooLong := strings.Repeat("a", email.MaxLength) + ".com"
	if err := e.SetDomain(tooLong); !errors.Is(err, email.ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
	if e.Domain() != "example.org" {
		t.Fatal("failed setter must not mutate the value")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Text / JSON round trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJSONRoundTrip(t *testing.T) {
	original, _ := email.Build("mail", "mail.com")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"mail@mail.com"` {
		t.Fatalf("marshalled as %s", data)
	}

	var decoded email.Email
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Fatalf("round trip changed value: %v != %v", decoded, original)
	}
}

func TestJSONUnmarshal_RejectsInvalid(t *testing.T) {
	var e email.Email
	if err := json.Unmarshal([]byte(`"mail.com"`), &e); !errors.Is(err, email.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
