package main

import "pookie4u/cmd/pookie/root"

func main() {
	root.Execute()
}
