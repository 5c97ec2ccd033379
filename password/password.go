package password

import (
	"regexp"

	"github.com/hasbyte1/go-credential-utils/hashing"
)

// HashShapePattern is the structural pattern identifying adaptive-hash
// output: "$<algorithm-id>$<cost>$<salt-and-digest>". Matching it is the
// only runtime proof [FromEncrypted] demands that a string is genuinely
// hash text rather than arbitrary plaintext.
const HashShapePattern = `^\$[a-z0-9]+\$[a-z0-9]+\$.*`

var hashShapeRE = regexp.MustCompile(HashShapePattern)

// redacted is what Raw renders instead of its plaintext.
const redacted = "********"

// ──────────────────────────────────────────────────────────────────────────────
// Raw
// ──────────────────────────────────────────────────────────────────────────────

// Raw is an unencrypted, not-yet-validated password. It holds untrusted
// plaintext and therefore exposes no accessor and prints redacted; the only
// ways out are [Raw.Check] (a strength gate) and the Encrypt methods (a
// one-way transition to [Encrypted]).
type Raw struct {
	value string
}

// New wraps untrusted plaintext as a [Raw] password. No validation happens
// here; validation is deferred to [Raw.Check].
func New(plaintext string) Raw {
	return Raw{value: plaintext}
}

// Check gates the password through the default policy ([NewChecker]: length
// ≥ 8, [StrengthDefault]). On success it returns the receiver unchanged —
// Check is a gate, not a transformation.
func (p Raw) Check() (Raw, error) {
	if _, err := NewChecker().Check(p.value); err != nil {
		return Raw{}, err
	}
	return p, nil
}

// CheckWith gates the password through a caller-supplied policy.
//
//	strict := password.NewChecker().MinLen(20).Strength(password.StrengthHard)
//	checked, err := password.New(input).CheckWith(strict)
func (p Raw) CheckWith(c Checker) (Raw, error) {
	if _, err := c.Check(p.value); err != nil {
		return Raw{}, err
	}
	return p, nil
}

// Encrypt transforms the password into an [Encrypted] by hashing it with
// bcrypt at the given work factor. An out-of-range cost is a configuration
// error ([hashing.ErrInvalidOption]), never a silent fallback.
//
// Encrypt does not strength-check; chain through [Raw.Check] first unless
// the policy deliberately skips validation. Drop the Raw once the Encrypted
// exists.
func (p Raw) Encrypt(cost int) (Encrypted, error) {
	h, err := hashing.NewBcryptHasher(cost)
	if err != nil {
		return Encrypted{}, err
	}
	return p.EncryptWith(h)
}

// EncryptDefault is [Raw.Encrypt] at [hashing.DefaultBcryptCost].
func (p Raw) EncryptDefault() (Encrypted, error) {
	return p.Encrypt(hashing.DefaultBcryptCost)
}

// EncryptWith transforms the password into an [Encrypted] using any
// [hashing.Hasher], e.g. Argon2id:
//
//	h, _ := hashing.NewArgon2idHasher(hashing.DefaultArgon2idOptions())
//	enc, err := password.New(input).EncryptWith(h)
func (p Raw) EncryptWith(h hashing.Hasher) (Encrypted, error) {
	hash, err := h.Hash(p.value)
	if err != nil {
		return Encrypted{}, err
	}
	return Encrypted{value: hash}, nil
}

// String renders a redaction, never the plaintext.
func (p Raw) String() string { return redacted }

// GoString renders a redaction, so %#v never leaks the plaintext either.
func (p Raw) GoString() string { return "password.Raw(" + redacted + ")" }

// UnmarshalText implements [encoding.TextUnmarshaler]. Any non-empty string
// is accepted with no strength check applied — decoding a request body is
// wrapping untrusted input, exactly what [New] does. Empty input fails with
// [ErrBlank].
//
// Raw deliberately has no MarshalText: plaintext is never serialised.
func (p *Raw) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return ErrBlank
	}
	p.value = string(text)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Encrypted
// ──────────────────────────────────────────────────────────────────────────────

// Encrypted is a hashed password, safe to persist and render. It can only be
// produced by the Encrypt methods on [Raw] or by [FromEncrypted]; there is
// no transition back to [Raw].
type Encrypted struct {
	value string
}

// FromEncrypted wraps pre-hashed text loaded from trusted storage. The text
// must look like adaptive-hash output — either matching [HashShapePattern]
// or carrying a prefix [hashing.DetectAlgorithm] recognises (Argon2id's PHC
// form has a "v=19" segment the shape pattern alone would reject). Anything
// else fails with [ErrNotEncrypted].
//
// This is a format sanity check only: it proves the value is hash text, not
// that the hash is sound or the work factor reasonable. Strength checks are
// bypassed because hash text encodes a password that was already checked
// before storage, or is asserted trusted by the caller.
func FromEncrypted(text string) (Encrypted, error) {
	if !hashShapeRE.MatchString(text) {
		if _, ok := hashing.DetectAlgorithm(text); !ok {
			// The input may well be plaintext; never echo it in the error.
			return Encrypted{}, ErrNotEncrypted
		}
	}
	return Encrypted{value: text}, nil
}

// Verify reports whether candidate's plaintext matches this hash. The
// algorithm is detected from the stored hash itself.
//
// A wrong password is (false, nil); an error means the stored hash is
// malformed or the oracle failed, and is surfaced opaquely from the
// hashing layer.
func (p Encrypted) Verify(candidate Raw) (bool, error) {
	return hashing.Verify(candidate.value, p.value)
}

// NeedsRehash reports whether the stored hash should be re-derived to match
// the given hasher's configuration: true when the hash was produced by a
// different algorithm, or by the same algorithm with different parameters.
// Callers typically re-encrypt on the next successful Verify.
func (p Encrypted) NeedsRehash(h hashing.Hasher) (bool, error) {
	algo, ok := hashing.DetectAlgorithm(p.value)
	if !ok || algo != h.Algorithm() {
		return true, nil
	}
	return h.NeedsRehash(p.value)
}

// AsStr returns the hash text.
func (p Encrypted) AsStr() string { return p.value }

// String returns the hash text. Hash text is safe to render: by
// construction an Encrypted never holds plaintext.
func (p Encrypted) String() string { return p.value }

// MarshalText implements [encoding.TextMarshaler]; an Encrypted serialises
// as its raw hash text.
func (p Encrypted) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] by delegating to
// [FromEncrypted], so decoding enforces the hash-shape check.
func (p *Encrypted) UnmarshalText(text []byte) error {
	dec, err := FromEncrypted(string(text))
	if err != nil {
		return err
	}
	*p = dec
	return nil
}
