package main

import (
	"github.com/stefan-balke/con-espressione/cmd"
)

func main() {
	cmd.Execute()
}
