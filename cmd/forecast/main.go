// cmd/forecast/main.go
package main

import (
	"os"

	"dca-oilgas/cmd/forecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
