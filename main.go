package main

import (
	"github.com/vargos/vargos-cli/internal/cli"
)

func main() {
	cli.Run()
}
