// Command lvseq loads a JSON or YAML array and prints live views over it.
//
//	lvseq view data.json --slice 2:7 --reverse
//	lvseq view data.yaml --out yaml
//	lvseq at data.json --index -1
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
