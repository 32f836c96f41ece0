package main

import "ifile/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
