package main

import "github.com/lumigrid/lumigrid/cli"

func main() {
	cli.Execute()
}
