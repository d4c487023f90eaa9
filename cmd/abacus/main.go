package main

import "github.com/abacus-calc/abacus/internal/cmd"

func main() {
	cmd.Execute()
}
