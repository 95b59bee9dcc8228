// Package main is the entry point for the TestGenie CLI.
package main

import "testgenie.dev/pkg/testgenie/cmd"

func main() {
	cmd.Execute()
}
