package main

import "github.com/siahbug/harmonica/cmd"

func main() {
	cmd.Execute()
}
