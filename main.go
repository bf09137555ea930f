package main

import (
	"os"

	"github.com/conifer0us/cnf49-compiler/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
