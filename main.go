package main

import "github.com/mkerr/twig/cmd"

func main() {
	cmd.Execute()
}
