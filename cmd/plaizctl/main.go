package main

import (
	"fmt"
	"os"

	"plaiz_studio/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
