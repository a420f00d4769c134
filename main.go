package main

import "vslocate/internal/cli"

func main() {
	cli.Execute()
}
