// Command sxgheader encodes HTTP header fields into the canonical CBOR map that signed
// exchanges carry and sign.
//
//	printf 'Content-Type: text/html\nVary: accept\n' | sxgheader --status 200 --format diag
//	sxgheader -H 'Content-Type: text/html' -H 'Digest: mi-sha256-03=...'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
