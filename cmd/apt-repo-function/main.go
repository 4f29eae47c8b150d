package main

import "apt-repo-function/internal/cli"

func main() {
	cli.Execute()
}
