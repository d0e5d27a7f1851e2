package main

import (
	"fmt"
	"os"

	"PortfolioGolang/internal/admin"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := admin.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
