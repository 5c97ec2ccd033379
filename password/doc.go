// Package password models the lifecycle of a credential as two distinct
// value types, so that plaintext and hash text can never be confused:
//
//   - [Raw] wraps untrusted plaintext. It can be strength-checked and it can
//     be encrypted. It cannot be persisted, printed, or verified against.
//   - [Encrypted] wraps adaptive-hash output. It can be verified against,
//     rendered, and serialised. There is no way back to [Raw].
//
// The state machine:
//
//	New(plaintext) ──► Raw ──Check──► Raw ──Encrypt──► Encrypted
//	FromEncrypted(trusted hash text) ─────────────────► Encrypted
//
// Because the two states are separate Go types, the illegal operations
// simply do not exist: there is no method to read a Raw's plaintext, no
// method to strength-check an Encrypted, and no constructor that turns
// arbitrary text into an Encrypted without the hash-shape check.
//
// # Strength checking
//
// [Raw.Check] gates on the default [Checker]: minimum length 8 and
// [StrengthDefault] (zxcvbn score 3). [Raw.CheckWith] accepts a custom
// policy. Checking is a gate, not a transformation — it returns the same Raw
// on success. Encrypting deliberately does not imply checking, so policies
// that skip strength validation remain possible; chain explicitly:
//
//	checked, err := password.New(input).Check()
//	if err != nil { return err }
//	enc, err := checked.Encrypt(hashing.DefaultBcryptCost)
//
// # Plaintext hygiene
//
// Go values cannot be consumed the way affine types are, so encryption
// cannot destroy the plaintext binding. The API compensates: Raw exposes no
// accessor, and both its String and GoString render a redaction. Drop the
// Raw value once the Encrypted exists.
package password
