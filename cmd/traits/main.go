// Package main provides the traits CLI.
package main

import "github.com/mesh-intelligence/traits/internal/cli"

func main() {
	cli.Execute()
}
