package main

import "github.com/kamal-hamza/sitegen/cmd"

func main() {
	cmd.Execute()
}
