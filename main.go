package main

import "costwatch/cmd"

func main() {
	cmd.Execute()
}
