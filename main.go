// Package main is the entry point for the railmv CLI.
package main

import "github.com/spacebat/railmv/cmd"

func main() {
	cmd.Execute()
}
