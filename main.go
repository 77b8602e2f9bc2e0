package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/pizzeria/cmd"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
