package main

import "github.com/papapumpkin/sourcecheck/cmd"

func main() {
	cmd.Execute()
}
