package main

import "github.com/tdxplot/tdxplot/cmd"

func main() {
	cmd.Execute()
}
