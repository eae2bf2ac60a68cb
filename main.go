package main

import "making-change/cmd"

func main() {
	cmd.Execute()
}
