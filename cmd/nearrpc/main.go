package main

import (
	"os"

	"github.com/lidofinance/near-jsonrpc/cmd/nearrpc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
