package main

import "github.com/TrevorS/unionfind/internal/cli"

func main() {
	cli.Execute()
}
