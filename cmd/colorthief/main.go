// colorthief - grab the dominant colour or a palette from an image
//
// colorthief quantizes an image with modified median cut and reports its
// dominant colour or a small palette of representative colours.
package main

import (
	"os"

	"github.com/UserUnknownFactor/colorthief/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
