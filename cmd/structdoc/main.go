package main

import (
	"github.com/mvp-joe/structdoc/internal/cli"
)

func main() {
	cli.Execute()
}
