package main

import "github.com/Johannes-Berggren/gonebranch/cmd"

func main() {
	cmd.Execute()
}
