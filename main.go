package main

import "ethograph/cmd"

// @title Ethograph API
// @version 1.0
// @description Animal behavior dashboard backend
func main() {
	cmd.Execute()
}
