package main

import "starauto/cmd/ctl/cmd"

func main() {
	cmd.Execute()
}
