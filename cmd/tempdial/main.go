package main

import "github.com/aalvaropc/tempdial/internal/cli"

func main() {
	cli.Execute()
}
