package main

import "github.com/thec00n/osmosis-cli-wrapper/cmd"

func main() {
	cmd.Execute()
}
