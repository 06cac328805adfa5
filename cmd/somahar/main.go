package main

import (
	"os"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
