// README: Entry point; loads config, wires the AI client and planner, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"planora/internal/ai"
	"planora/internal/config"
	httptransport "planora/internal/http"
	"planora/internal/maps"
	"planora/internal/modules/itinerary"
	"planora/internal/modules/planner"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var client ai.Client
	switch cfg.AI.Provider {
	case "openai":
		client, err = ai.NewOpenAIClient(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel)
	default:
		var gemini *ai.GeminiClient
		gemini, err = ai.NewGeminiClient(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err == nil {
			defer gemini.Close()
			client = gemini
		}
	}
	if err != nil {
		log.Fatalf("ai client init: %v", err)
	}

	itinerarySvc, err := itinerary.NewService(client)
	if err != nil {
		log.Fatal(err)
	}

	// The AI service answers nearby-place lookups unless a Maps key is set,
	// in which case the Places API takes over.
	var finder planner.NearbyFinder = itinerarySvc
	if cfg.Maps.APIKey != "" {
		placesFinder, err := maps.NewPlacesFinder(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps client init: %v", err)
		}
		finder = planner.NewPlacesNearbyFinder(placesFinder)
	}

	plannerSvc, err := planner.NewService(planner.NewStore(cfg.Planner.MaxSessions), itinerarySvc, finder, nil)
	if err != nil {
		log.Fatal(err)
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{Planner: plannerSvc})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s (provider=%s)", cfg.HTTP.Addr, cfg.AI.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
