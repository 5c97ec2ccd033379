// Package email provides an immutable, validated email-address value type.
//
// The point of the type is validation by construction: an [Email] can only
// come into existence through [Build], [Parse], or text unmarshalling, and
// every path enforces the same rules. Once a caller holds an Email, no
// re-validation is ever needed.
//
// # Validation rules
//
//   - the combined length of local part and domain is within [MinLength, MaxLength]
//   - the local part matches [A-Za-z0-9_.+-]+
//   - the domain matches [A-Za-z0-9-]+\.[A-Za-z0-9-.]+ (at least one
//     dot-separated label)
//
// The setters re-validate the changed part and the combined length, so the
// invariants hold across mutation too.
//
// This is deliberately not a full RFC 5322 validator. Like most server-side
// guardrails it rejects quoted local parts and local-only domains such as
// "user@localhost"; internet-routable addresses are assumed.
//
// # Quick start
//
//	addr, err := email.Parse("example@example.com")
//	if err != nil { log.Fatal(err) }
//
//	addr.Username() // "example"
//	addr.Domain()   // "example.com"
package email
