// Command tabdemo shows tab groups docked to windows. "run" opens a window,
// "inspect" prints the laid-out component tree without a display.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
