package main

import "github.com/bloodmagesoftware/csgforge/cmd"

func main() {
	cmd.Execute()
}
