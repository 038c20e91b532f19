package main

import "github.com/brookluers/survcmp/internal/cli"

func main() {
	cli.Execute()
}
