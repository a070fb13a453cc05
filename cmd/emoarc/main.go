package main

import "github.com/ShaikhWarsi/Creator-Catalyst/internal/cli"

func main() {
	cli.Main()
}
