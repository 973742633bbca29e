package main

import "github.com/mouse-blink/gitex/cmd"

func main() {
	cmd.Execute()
}
