package main

import (
	"os"

	"github.com/tradingdata/trading-bridge/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
