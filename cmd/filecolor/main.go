package main

import "github.com/amterp/filecolor/internal/cli"

func main() {
	cli.Run()
}
