package main

import "os"

// version can be set during build with -ldflags
var version = "dev"

func main() {
	os.Exit(execute(newRootCmd(version), os.Args[1:]))
}
