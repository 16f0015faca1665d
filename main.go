package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/avvvet/dsbuddy/cmd"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	os.Exit(cmd.Execute())
}
