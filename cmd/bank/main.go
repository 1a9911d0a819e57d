package main

import (
	"github.com/joho/godotenv"

	"github.com/PudgyPigeon/MockBankSystem/internal/cli"
)

func main() {
	// Load .env if present; env vars already set win
	_ = godotenv.Load()

	cli.Execute()
}
