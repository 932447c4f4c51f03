package main

import "github.com/chrisdamba/restaurantsim/cmd"

func main() {
	cmd.Execute()
}
