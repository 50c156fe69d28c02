package main

import (
	"os"

	"github.com/xunohq/support-chat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
