package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// DefaultArgon2idMemory is the default memory cost in KiB (64 MiB).
	// OWASP ASVS Level 2 requires ≥ 19 MiB; 64 MiB is the standard production
	// recommendation for Argon2id.
	DefaultArgon2idMemory uint32 = 64 * 1024

	// DefaultArgon2idTime is the default number of iterations.
	DefaultArgon2idTime uint32 = 3

	// DefaultArgon2idThreads is the default degree of parallelism.
	DefaultArgon2idThreads uint8 = 2

	// DefaultArgon2idKeyLen is the default output key length in bytes.
	DefaultArgon2idKeyLen uint32 = 32

	// DefaultArgon2idSaltLen is the default random salt length in bytes.
	DefaultArgon2idSaltLen uint32 = 16

	// argon2Version is the Argon2 specification version encoded in hashes.
	argon2Version = argon2.Version // 0x13 = 19
)

// Argon2idOptions configures an [Argon2idHasher].
//
// All parameters are directly encoded into the output hash string (PHC
// format), so changing them only affects newly produced hashes; existing
// hashes remain verifiable.
type Argon2idOptions struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads. Default: [DefaultArgon2idMemory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory (iterations).
	// Minimum: 1. Default: [DefaultArgon2idTime] (3).
	Time uint32

	// Threads is the degree of parallelism.
	// Minimum: 1. Default: [DefaultArgon2idThreads] (2).
	Threads uint8

	// KeyLen is the length of the derived key in bytes.
	// Default: [DefaultArgon2idKeyLen] (32).
	KeyLen uint32

	// SaltLen is the length of the random salt in bytes.
	// Minimum: 8. Default: [DefaultArgon2idSaltLen] (16).
	SaltLen uint32
}

// DefaultArgon2idOptions returns Argon2idOptions with the recommended
// defaults. These exceed OWASP ASVS Level 2 requirements.
func DefaultArgon2idOptions() Argon2idOptions {
	return Argon2idOptions{
		Memory:  DefaultArgon2idMemory,
		Time:    DefaultArgon2idTime,
		Threads: DefaultArgon2idThreads,
		KeyLen:  DefaultArgon2idKeyLen,
		SaltLen: DefaultArgon2idSaltLen,
	}
}

func validateArgon2idOptions(opts Argon2idOptions) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2idHasher
// ──────────────────────────────────────────────────────────────────────────────

// Argon2idHasher hashes passwords using the Argon2id algorithm.
//
// Argon2id is a hybrid of Argon2i and Argon2d. It provides resistance to
// both side-channel attacks (first half of passes) and time-memory trade-off
// attacks (second half of passes), making it the recommended choice for
// password hashing according to RFC 9106 and OWASP.
//
// Output format: PHC string ($argon2id$v=19$m=…,t=…,p=…$<salt>$<hash>).
//
// # Thread safety
//
// Argon2idHasher is immutable after construction and safe for concurrent use.
type Argon2idHasher struct {
	opts Argon2idOptions
}

// NewArgon2idHasher constructs an Argon2idHasher with the given options.
// Use [DefaultArgon2idOptions] for recommended defaults.
func NewArgon2idHasher(opts Argon2idOptions) (*Argon2idHasher, error) {
	if err := validateArgon2idOptions(opts); err != nil {
		return nil, err
	}
	return &Argon2idHasher{opts: opts}, nil
}

// Algorithm returns [AlgorithmArgon2id].
func (h *Argon2idHasher) Algorithm() AlgorithmName { return AlgorithmArgon2id }

// Options returns the current Argon2id parameter set.
func (h *Argon2idHasher) Options() Argon2idOptions { return h.opts }

// Hash derives an Argon2id hash and returns it as a PHC-formatted string.
// A fresh random salt of the configured length is generated for each call.
func (h *Argon2idHasher) Hash(plaintext string) (string, error) {
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey(
		[]byte(plaintext), salt,
		h.opts.Time, h.opts.Memory, h.opts.Threads, h.opts.KeyLen,
	)
	return encodePHC(argon2Version, h.opts.Memory, h.opts.Time, h.opts.Threads, salt, key), nil
}

// Verify reports whether plaintext matches the Argon2id PHC hash.
// The parameters (memory, time, threads) are read from the hash string
// itself, so verification works correctly even when the hasher's options
// have changed. Returns (false, nil) on a simple mismatch.
func (h *Argon2idHasher) Verify(plaintext, hash string) (bool, error) {
	if a, ok := DetectAlgorithm(hash); !ok || a != AlgorithmArgon2id {
		return false, fmt.Errorf("%w: hash does not appear to be argon2id", ErrAlgorithmMismatch)
	}
	return verifyArgon2id(plaintext, hash)
}

// NeedsRehash returns true if any parameter stored in hash differs from the
// hasher's current configuration.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	if a, ok := DetectAlgorithm(hash); !ok || a != AlgorithmArgon2id {
		return false, fmt.Errorf("%w: hash does not appear to be argon2id", ErrAlgorithmMismatch)
	}
	p, err := decodePHC(hash)
	if err != nil {
		return false, err
	}
	return p.memory != h.opts.Memory ||
		p.time != h.opts.Time ||
		p.threads != h.opts.Threads ||
		p.keyLen != h.opts.KeyLen, nil
}

// verifyArgon2id is the configuration-free verification path shared by
// [Argon2idHasher.Verify] and the package-level [Verify].
func verifyArgon2id(plaintext, hash string) (bool, error) {
	p, err := decodePHC(hash)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey([]byte(plaintext), p.salt, p.time, p.memory, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(computed, p.hash) == 1, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PHC string format helpers
// ──────────────────────────────────────────────────────────────────────────────

// argon2Params holds parameters and raw values decoded from a PHC hash string.
type argon2Params struct {
	version uint32
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	salt    []byte
	hash    []byte
}

// encodePHC serialises an Argon2id hash in PHC String Format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt_base64>$<hash_base64>
//
// The base64 encoding uses the standard alphabet without padding (RFC 4648 §5
// without "=") — the convention used by the Argon2 reference implementation.
func encodePHC(version, memory, time uint32, threads uint8, salt, hash []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		string(AlgorithmArgon2id),
		version,
		memory,
		time,
		threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

// decodePHC parses an Argon2id PHC hash string and returns its components.
//
// Expected format (6 dollar-delimited segments, first is empty):
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
func decodePHC(encoded string) (*argon2Params, error) {
	// Split on "$"; the leading "$" produces an empty first element.
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string, got %d segments",
			ErrInvalidHash, len(parts)-1)
	}

	if parts[1] != string(AlgorithmArgon2id) {
		return nil, fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidHash, parts[1])
	}

	// parts[2]: "v=<version>"
	version, err := parseKV(parts[2], "v")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	// parts[3]: "m=<memory>,t=<time>,p=<threads>"
	kvs, err := parseParams(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	threads, ok3 := kvs["p"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("%w: missing m/t/p in parameter segment %q", ErrInvalidHash, parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrInvalidHash, err)
	}

	return &argon2Params{
		version: uint32(version),
		memory:  uint32(memory),
		time:    uint32(time),
		threads: uint8(threads),
		keyLen:  uint32(len(hash)),
		salt:    salt,
		hash:    hash,
	}, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}

// parseParams splits "m=65536,t=3,p=2" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("hashing: argon2: failed to generate salt: %w", err)
	}
	return b, nil
}
