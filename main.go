package main

import "github.com/silenciopz/hwbench/cmd"

func main() {
	cmd.Execute()
}
