package main

import "github.com/BruksfildServices01/appointment-relay/internal/cli"

func main() {
	cli.Execute()
}
