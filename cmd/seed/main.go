package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"nutriclinic/database"
	"nutriclinic/internal/utils"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedReferenceFoods(database.DB); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := utils.ClearReferenceFoods(database.DB); err != nil {
			log.Fatalf("Clearing failed: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command>")
	fmt.Println("Commands:")
	fmt.Println("  seed   Insert the bundled reference food table")
	fmt.Println("  clear  Remove seeded reference foods")
}
