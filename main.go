package main

import "github.com/notargets/gofoil/cmd"

func main() {
	cmd.Execute()
}
