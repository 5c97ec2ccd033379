package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is the recommended work factor for bcrypt.
	// At cost 12, hashing takes approximately 250 ms on a modern server CPU,
	// which satisfies OWASP ASVS Level 1 (≥ 10) and Level 2 (≥ 12).
	//
	// Increase this value as hardware improves; aim to keep hashing time
	// between 100 ms and 500 ms for your deployment environment.
	DefaultBcryptCost = 12

	// MinBcryptCost and MaxBcryptCost delimit the valid bcrypt work-factor
	// range. Costs outside this range are rejected by [NewBcryptHasher]
	// rather than silently clamped.
	MinBcryptCost = bcrypt.MinCost // 4
	MaxBcryptCost = bcrypt.MaxCost // 31
)

// BcryptHasher hashes passwords using the bcrypt algorithm.
//
// Bcrypt internally generates and stores a 128-bit (16-byte) random salt,
// so callers never need to manage salts explicitly.
//
// # When to use bcrypt vs Argon2id
//
// Bcrypt is the battle-tested choice with the widest ecosystem support.
// Prefer [Argon2idHasher] for new systems — it allows tuning of memory cost,
// which makes GPU/ASIC attacks significantly more expensive.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the given work factor.
// Returns [ErrInvalidOption] if cost is outside [MinBcryptCost, MaxBcryptCost];
// a dangerously low cost is a configuration error, never a silent fallback.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < MinBcryptCost || cost > MaxBcryptCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, cost, MinBcryptCost, MaxBcryptCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Algorithm returns [AlgorithmBcrypt].
func (h *BcryptHasher) Algorithm() AlgorithmName { return AlgorithmBcrypt }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash derives a bcrypt hash in Modular Crypt Format (e.g., "$2b$12$...").
// A fresh 128-bit random salt is generated internally.
//
// Security note: bcrypt truncates passwords longer than 72 bytes. If you
// need to hash longer passwords, use [Argon2idHasher] instead.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the bcrypt-encoded hash.
// Returns (false, nil) on mismatch; never surfaces
// bcrypt.ErrMismatchedHashAndPassword as an error.
func (h *BcryptHasher) Verify(plaintext, hash string) (bool, error) {
	if !h.looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	return verifyBcrypt(plaintext, hash)
}

// NeedsRehash returns true if the work factor encoded in hash differs from
// the hasher's configured cost. A lower stored cost means the hash is weaker
// than the current configuration; a higher stored cost means the
// configuration was intentionally dialled back (rare but handled).
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	if !h.looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return cost != h.cost, nil
}

// looksLikeBcrypt returns true if hash has a recognised bcrypt prefix.
func (h *BcryptHasher) looksLikeBcrypt(hash string) bool {
	a, ok := DetectAlgorithm(hash)
	return ok && a == AlgorithmBcrypt
}

// verifyBcrypt is the configuration-free verification path shared by
// [BcryptHasher.Verify] and the package-level [Verify]; the work factor is
// read from the hash itself.
func verifyBcrypt(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: bcrypt: %v", ErrInvalidHash, err)
	}
	return true, nil
}
