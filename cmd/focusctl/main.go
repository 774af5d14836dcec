package main

import "focustrack/cmd/focusctl/root"

func main() {
	root.Execute()
}
