package main

import (
	"github.com/go-imsto/imconv/cmd"
)

func main() {
	cmd.Main()
}
