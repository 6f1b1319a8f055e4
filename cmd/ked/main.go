// Command ked is a modal terminal text editor.
package main

import (
	"os"

	"src.ked.sh/pkg/buildinfo"
	"src.ked.sh/pkg/ked"
	"src.ked.sh/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		buildinfo.Program, ked.Program{}))
}
