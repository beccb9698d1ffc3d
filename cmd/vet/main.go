// Package main provides the vet CLI entry point.
package main

import "os"

func main() {
	os.Exit(Execute())
}
