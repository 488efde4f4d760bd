// main is the entry point of the examviz CLI.
package main

import (
	"github.com/huangsam/examviz/cmd"
	"github.com/huangsam/examviz/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("examviz", err)
	}
}
