package main

import (
	"os"

	"paynet/cmd/paynet/commands"
)

func main() {
	os.Exit(commands.Execute())
}
