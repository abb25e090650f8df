// Package main is the entry point for the citydistance CLI.
package main

import "github.com/randytsao24/citydistance/internal/cli"

func main() {
	cli.Execute()
}
