package main

import "auction-manager/cmd"

func main() {
	cmd.Execute()
}
