// Command putusanctl manages the putusan database: migrations, batch
// imports of extracted judgments and seed accounts.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
