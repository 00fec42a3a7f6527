package main

import "github.com/VinciYan/tileserv/cmd"

func main() {
	cmd.Execute()
}
