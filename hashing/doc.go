// Package hashing is the password-hashing layer behind the password value
// types. It wraps the adaptive hash primitives from golang.org/x/crypto
// behind a small [Hasher] interface so the rest of the module never touches
// an algorithm directly.
//
// # Drivers
//
// Two drivers ship with this package:
//
//   - [BcryptHasher] — bcrypt (widest ecosystem support; the default driver
//     used by password.Raw.Encrypt)
//   - [Argon2idHasher] — Argon2id (recommended for new systems per RFC 9106;
//     memory-hard, resists GPU/ASIC attacks)
//
// Both implement [Hasher]. Verification never needs configuration: every
// parameter is encoded in the hash string itself, so the package-level
// [Verify] can check any recognised hash by sniffing its prefix with
// [DetectAlgorithm] and dispatching to the right driver.
//
// # Quick start
//
//	h, err := hashing.NewBcryptHasher(hashing.DefaultBcryptCost)
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Hash("my-secret-password")
//	ok, _ := hashing.Verify("my-secret-password", hash) // true
//
// # Security defaults
//
//   - bcrypt:  cost 12 (≈ 250 ms on modern hardware; exceeds OWASP minimum of 10).
//   - Argon2id: m=64 MiB, t=3 iterations, p=2 threads, 32-byte key.
//     Exceeds OWASP ASVS Level 2 (m≥19 MiB, t≥2, p≥1).
//
// # Error contract
//
// Verification distinguishes "wrong password" from "broken hash": a mismatch
// is (false, nil), and an error is returned only for malformed hash strings
// or internal failures. Callers must therefore check both return values.
package hashing
