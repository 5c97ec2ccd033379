package password_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-credential-utils/hashing"
	"github.com/hasbyte1/go-credential-utils/password"
)

// Example demonstrates the full lifecycle: wrap, gate, hash, verify.
func Example() {
	checked, err := password.New("ThisIsAPassPhrase.And.Secure.Password").Check()
	if err != nil {
		log.Fatal(err)
	}

	enc, err := checked.Encrypt(hashing.MinBcryptCost)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := enc.Verify(password.New("ThisIsAPassPhrase.And.Secure.Password"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleChecker demonstrates a custom policy and the structured errors it
// returns.
func ExampleChecker() {
	strict := password.NewChecker().MinLen(20).Strength(password.StrengthHard)

	_, err := strict.Check("my.passphrase.0-9")

	var lenErr *password.LengthError
	if errors.As(err, &lenErr) {
		fmt.Printf("needs at least %d characters\n", lenErr.Min)
	}
	// Output: needs at least 20 characters
}

// ExampleFromEncrypted demonstrates that arbitrary text is rejected while
// genuine hash output is accepted.
func ExampleFromEncrypted() {
	_, err := password.FromEncrypted("ThisIsAPassPhrase.And.Secure.Password")
	fmt.Println(errors.Is(err, password.ErrNotEncrypted))

	enc, err := password.New("ThisIsAPassPhrase.And.Secure.Password").Encrypt(hashing.MinBcryptCost)
	if err != nil {
		log.Fatal(err)
	}
	_, err = password.FromEncrypted(enc.AsStr())
	fmt.Println(err == nil)
	// Output:
	// true
	// true
}
