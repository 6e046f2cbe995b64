package main

import "github.com/timvw/panehop/cmd"

func main() {
	cmd.Execute()
}
