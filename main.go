// Package main is the entry point of the aoc2023 CLI.
package main

import "github.com/mouse-blink/aoc2023/cmd"

func main() {
	cmd.Execute()
}
