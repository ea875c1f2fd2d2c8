package main

import "github.com/noshiro-pf/immu/cmd"

func main() {
	cmd.Execute()
}
