//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of ecosim requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ecosim` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal view use `go run ./cmd/ecosim-term`.")
	os.Exit(2)
}
