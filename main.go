package main

import (
	"fmt"
	"os"

	"github.com/Mercerenies/wuas-render/cmd"
)

func main() {
	if err := cmd.Main(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wuas-render: %v\n", err)
		os.Exit(1)
	}
}
