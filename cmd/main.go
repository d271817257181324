// cmd/main.go
package main

import cmd "github.com/mwiater/mcpreport/cmd/mcpreport"

// main starts the mcpreport CLI application by delegating to the
// cobra root command defined in the mcpreport package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
