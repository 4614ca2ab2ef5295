package main

import "namematch/internal/cli"

func main() {
	cli.Execute()
}
