package main

import "github.com/francois-poidevin/flightsun/cli/cmd"

func main() {
	cmd.Execute()
}
