package main

import "github.com/aslandrive/aslandrive/cmd"

func main() {
	cmd.Execute()
}
