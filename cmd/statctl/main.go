package main

import "isl-dashboard/internal/cli"

func main() {
	cli.Execute()
}
