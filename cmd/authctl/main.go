// Command authctl calls the auth API signup and login endpoints from a terminal
// and prints the raw response JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
