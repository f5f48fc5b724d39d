package main

import "registry-server/cmd"

func main() {
	cmd.Execute()
}
