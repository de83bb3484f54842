package main

import (
	"os"
	"terminalist/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
//
// terminalist is a single binary with two faces, chosen by the name it was invoked as:
//   - As `terminalist` it is the management CLI: list, install and remove interceptions.
//   - As anything else (a symlink named after an intercepted tool, e.g. `find`) it prints
//     how to use the alternate tool instead and exits 1, because the original tool was not run.
func main() {
	os.Exit(cmd.Main(os.Args))
}
