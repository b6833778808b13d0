package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"planora/internal/ai"
	"planora/internal/modules/itinerary"
)

// newLiveService skips the test unless GEMINI_API_KEY is available. These
// tests hit the real Gemini API and are not part of the normal unit run.
func newLiveService(t *testing.T) *itinerary.Service {
	t.Helper()
	_ = godotenv.Load("../../.env")

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live AI integration test")
	}

	client, err := ai.NewGeminiClient(context.Background(), apiKey, os.Getenv("PLANORA_GEMINI_MODEL"))
	if err != nil {
		t.Fatalf("gemini client init: %v", err)
	}
	t.Cleanup(client.Close)

	svc, err := itinerary.NewService(client)
	if err != nil {
		t.Fatalf("itinerary service init: %v", err)
	}
	return svc
}

func TestLiveGenerateFullItinerary(t *testing.T) {
	svc := newLiveService(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	plan, err := svc.GenerateFullItinerary(ctx, "제주도", "힐링 여행", "2026-10-01", "2026-10-02", 2)
	if err != nil {
		t.Fatalf("GenerateFullItinerary: %v", err)
	}
	if len(plan.Schedule) == 0 {
		t.Fatal("expected at least one schedule entry")
	}
	for _, e := range plan.Schedule {
		if e.Date == "" || e.Time == "" || strings.TrimSpace(e.Activity) == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
		if e.Date < "2026-10-01" || e.Date > "2026-10-02" {
			t.Errorf("entry date %q outside requested range", e.Date)
		}
	}
	t.Logf("[TEST LOG] generated %d entries, %d checklist items", len(plan.Schedule), len(plan.Checklist))
}

func TestLiveParseNarrativeToSchedule(t *testing.T) {
	svc := newLiveService(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	entries, err := svc.ParseNarrativeToSchedule(ctx, "내일 오후 3시에 성산일출봉에 가고, 저녁 7시에는 흑돼지를 먹을 거야")
	if err != nil {
		t.Fatalf("ParseNarrativeToSchedule: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected entries parsed from narrative text")
	}
	for _, e := range entries {
		if e.Date == "" || strings.TrimSpace(e.Activity) == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
	}
	t.Logf("[TEST LOG] parsed %d entries", len(entries))
}
