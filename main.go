package main

import (
	"github.com/teatak/mmseg/cmd"
)

func main() {
	cmd.Execute()
}
