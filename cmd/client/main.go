package main

import "sharenotes/cmd/client/cmd"

func main() {
	cmd.Execute()
}
