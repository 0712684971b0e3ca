package main

import "niri-balance/cmd"

func main() {
	cmd.Execute()
}
