package main

import (
	"log"

	"github.com/joho/godotenv"

	"firedispatch/cmd"
)

func main() {
	// Credentials may live in a .env file; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatalf("firedispatch: %v", err)
	}
}
