package main

import "loadscreen-export/cmd"

func main() {
	cmd.Execute()
}
