package main

import "sptid/cmd"

func main() {
	cmd.Execute()
}
