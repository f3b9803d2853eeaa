package main

import "github.com/saportinsta65/life-rpg/cmd/lr/root"

func main() {
	root.Execute()
}
