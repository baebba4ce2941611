package main

import "github.com/mvp-joe/cortex-hover/internal/cli"

func main() {
	cli.Execute()
}
