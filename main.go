package main

import "github.com/clydeger/a340-controller/internal/cli"

func main() {
	cli.Execute()
}
