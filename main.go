package main

import "wikilabels/cmd"

func main() {
	cmd.Execute()
}
