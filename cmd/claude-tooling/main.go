package main

import "github.com/charlesmsiegel/claude-tooling/internal/cli"

func main() {
	cli.Execute()
}
