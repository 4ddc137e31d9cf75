package main

import (
	"os"

	"github.com/blackhillsconsortium/annualreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
