// ABOUTME: Entry point for the contentcheck diagnostic CLI
// ABOUTME: Reports which content types and entries a Contentful space holds

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
