package main

import (
	"os"

	"github.com/sloguard/server/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
