package main

import "github.com/yaoapp/callbacks/cmd"

func main() {
	cmd.Execute()
}
