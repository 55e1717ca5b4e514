package main

import "github.com/jamesbehr/shipshape/cmd"

func main() {
	cmd.Execute()
}
