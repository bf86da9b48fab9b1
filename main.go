package main

import "github.com/khanesh/khanesh/cmd"

func main() {
	cmd.Execute()
}
