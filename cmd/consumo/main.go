package main

import "github.com/aalvaropc/consumo/internal/cli"

func main() {
	cli.Execute()
}
