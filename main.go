package main

import "github.com/killallgit/chatlist/cmd"

func main() {
	cmd.Execute()
}
