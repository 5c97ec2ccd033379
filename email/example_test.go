package email_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-credential-utils/email"
)

// ExampleParse demonstrates parsing a full address string.
func ExampleParse() {
	addr, err := email.Parse("example@example.com")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(addr.Username())
	fmt.Println(addr.Domain())
	// Output:
	// example
	// example.com
}

// ExampleBuild demonstrates constructing an address from its parts and
// mutating it afterwards.
func ExampleBuild() {
	addr, err := email.Build("john", "example.com")
	if err != nil {
		log.Fatal(err)
	}

	if err := addr.SetDomain("example.org"); err != nil {
		log.Fatal(err)
	}

	fmt.Println(addr)
	// Output: john@example.org
}
