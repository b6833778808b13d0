package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"planora/internal/ai"
	"planora/internal/modules/itinerary"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	client, err := ai.NewGeminiClient(ctx, apiKey, os.Getenv("PLANORA_GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}
	defer client.Close()

	svc, err := itinerary.NewService(client)
	if err != nil {
		log.Fatal(err)
	}

	plan, err := svc.GenerateFullItinerary(ctx, "제주도", "힐링 여행", "2026-10-01", "2026-10-03", 2)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	fmt.Println("Schedule:")
	for _, e := range plan.Schedule {
		fmt.Printf("  %s %s  %s", e.Date, e.Time, e.Activity)
		if e.Location != "" {
			fmt.Printf(" @ %s", e.Location)
		}
		if e.Cost != "" {
			fmt.Printf(" (%s)", e.Cost)
		}
		fmt.Println()
	}

	fmt.Println("Checklist:")
	for _, item := range plan.Checklist {
		fmt.Printf("  - %s\n", item)
	}

	fmt.Printf("Total: %s\n", itinerary.CostSummary(plan.Schedule))
}
