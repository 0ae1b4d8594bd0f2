//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The windowed build of forestfire requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/forestfire-gui` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "The terminal version is `go run ./cmd/forestfire`.")
	os.Exit(2)
}
