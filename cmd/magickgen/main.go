// Command magickgen generates the Go bindings of the Magick.Native library.
package main

import (
	"fmt"
	"os"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "magickgen:", err)
		os.Exit(1)
	}
}
