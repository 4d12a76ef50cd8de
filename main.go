package main

import cmd "github.com/logcatize/logcatize/cmd/logcatize"

func main() {
	cmd.Execute()
}
