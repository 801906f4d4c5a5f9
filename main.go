package main

import "github.com/aipulse/aipulse-cli/cmd"

func main() {
	cmd.Execute()
}
