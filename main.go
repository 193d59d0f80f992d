package main

import "flipledger/cmd"

func main() {
	cmd.Execute()
}
