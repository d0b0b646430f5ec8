package main

import "edshop/internal/cmd"

func main() {
	cmd.Execute()
}
