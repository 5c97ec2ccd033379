package hashing

import (
	"fmt"
	"strings"
)

// AlgorithmName identifies a password-hashing algorithm.
// Using a named string type prevents accidental confusion with plain strings.
type AlgorithmName string

const (
	// AlgorithmBcrypt identifies the bcrypt algorithm.
	AlgorithmBcrypt AlgorithmName = "bcrypt"
	// AlgorithmArgon2id identifies the Argon2id algorithm.
	AlgorithmArgon2id AlgorithmName = "argon2id"
)

// Hasher is the oracle contract satisfied by all password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
// Hashing and verification are CPU-bound and deliberately slow (adaptive work
// factor); callers needing bounded latency must impose their own timeout at
// the call boundary.
type Hasher interface {
	// Hash derives an encoded hash string from a plaintext password.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same password produce different outputs.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Verify(plaintext, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with parameters
	// that differ from the hasher's current configuration. Callers should
	// re-hash the password on next successful verification when this
	// returns true.
	NeedsRehash(hash string) (bool, error)

	// Algorithm returns the AlgorithmName implemented by this hasher.
	Algorithm() AlgorithmName
}

// DetectAlgorithm inspects a hash string and returns the [AlgorithmName] that
// produced it. It is a best-effort heuristic based on the hash prefix and
// does not verify the hash itself.
//
// The second return value is false when the hash format is not recognised.
func DetectAlgorithm(hash string) (AlgorithmName, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return AlgorithmArgon2id, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return AlgorithmBcrypt, true
	default:
		return "", false
	}
}

// Verify checks plaintext against a stored hash of any recognised algorithm.
// The algorithm is detected from the hash prefix and verification parameters
// are read from the hash string itself, so no driver configuration is needed.
//
// Returns (false, nil) on a simple mismatch. Returns [ErrUnknownAlgorithm]
// when the hash prefix is not recognised, or [ErrInvalidHash] when the hash
// is recognised but malformed.
func Verify(plaintext, hash string) (bool, error) {
	algo, ok := DetectAlgorithm(hash)
	if !ok {
		return false, fmt.Errorf("%w: %q has no recognised prefix", ErrUnknownAlgorithm, previewHash(hash))
	}
	switch algo {
	case AlgorithmBcrypt:
		return verifyBcrypt(plaintext, hash)
	case AlgorithmArgon2id:
		return verifyArgon2id(plaintext, hash)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// previewHash truncates a hash string for inclusion in error messages, so a
// mistakenly passed plaintext never lands in a log line whole.
func previewHash(hash string) string {
	const max = 12
	if len(hash) <= max {
		return hash
	}
	return hash[:max] + "..."
}
