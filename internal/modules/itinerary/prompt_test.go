package itinerary

import (
	"errors"
	"strings"
	"testing"

	"planora/internal/ai"
)

func TestBuildFullItineraryPrompt(t *testing.T) {
	prompt, schema, err := BuildFullItineraryPrompt("제주도", "힐링 여행", "2024-05-01", "2024-05-03", 2)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{"제주도", "힐링 여행", "2024-05-01", "2024-05-03", "2명"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if schema == nil || schema.Kind != ai.KindObject {
		t.Fatalf("schema = %+v, want object", schema)
	}
	sched, ok := schema.Properties["schedule"]
	if !ok || sched.Kind != ai.KindArray {
		t.Fatalf("schedule schema missing or not array")
	}
	required := strings.Join(sched.Items.Required, ",")
	if required != "date,time,activity" {
		t.Errorf("schedule item required = %q", required)
	}
	if _, ok := sched.Items.Properties["cost"]; !ok {
		t.Errorf("cost should be described even though optional")
	}
	if _, ok := schema.Properties["checklist"]; !ok {
		t.Errorf("checklist schema missing")
	}
}

func TestBuildFullItineraryPromptDefaultsConcept(t *testing.T) {
	prompt, _, err := BuildFullItineraryPrompt("부산", "", "2024-05-01", "2024-05-02", 4)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "지정되지 않음") {
		t.Errorf("empty concept should fall back to placeholder")
	}
}

func TestBuildFullItineraryPromptValidation(t *testing.T) {
	cases := []struct {
		name                    string
		destination, start, end string
		partySize               int
	}{
		{"missing destination", "", "2024-05-01", "2024-05-02", 2},
		{"missing start date", "서울", "", "2024-05-02", 2},
		{"missing end date", "서울", "2024-05-01", "", 2},
		{"zero party size", "서울", "2024-05-01", "2024-05-02", 0},
		{"negative party size", "서울", "2024-05-01", "2024-05-02", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := BuildFullItineraryPrompt(tc.destination, "", tc.start, tc.end, tc.partySize)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestBuildNarrativeParsePrompt(t *testing.T) {
	prompt, schema, err := BuildNarrativeParsePrompt("내일 아침 경복궁 구경", "2024-05-01")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "2024-05-01") {
		t.Errorf("reference date not embedded")
	}
	if !strings.Contains(prompt, "날짜가 한 번 언급되면") {
		t.Errorf("same-day date inheritance instruction missing")
	}
	if !strings.Contains(prompt, "내일 아침 경복궁 구경") {
		t.Errorf("narrative text not embedded")
	}
	if schema.Kind != ai.KindArray || schema.Items.Kind != ai.KindObject {
		t.Fatalf("schema should be array of objects, got %+v", schema)
	}

	if _, _, err := BuildNarrativeParsePrompt("   ", "2024-05-01"); !errors.Is(err, ErrValidation) {
		t.Fatalf("whitespace narrative: err = %v, want ErrValidation", err)
	}
}

func TestBuildChecklistFromSchedulePrompt(t *testing.T) {
	entries := []ScheduleEntry{
		{Date: "2024-05-01", Time: "10:00", Activity: "수영", Location: "해운대 해수욕장"},
		{Date: "2024-05-02", Time: "09:00", Activity: "등산"},
	}
	prompt, schema, err := BuildChecklistFromSchedulePrompt(entries)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{"수영", "해운대 해수욕장", "등산", "장소 미지정"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	// The activity-expansion exemplar must survive: swimming expands beyond
	// just a swimsuit.
	if !strings.Contains(prompt, "수영복, 수경, 수모, 방수 가방, 비치 타월") {
		t.Errorf("swimming expansion exemplar missing")
	}
	if schema.Kind != ai.KindArray || schema.Items.Kind != ai.KindString {
		t.Fatalf("schema should be array of strings, got %+v", schema)
	}

	if _, _, err := BuildChecklistFromSchedulePrompt(nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty schedule: err = %v, want ErrValidation", err)
	}
}

func TestBuildNearbyPlacesPrompt(t *testing.T) {
	prompt, schema, err := BuildNearbyPlacesPrompt("경복궁", CategoryRestaurant)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "경복궁") || !strings.Contains(prompt, "맛집 5곳") {
		t.Errorf("prompt should name the location and ask for exactly 5: %s", prompt)
	}
	item := schema.Items
	if item == nil || len(item.Required) != 3 {
		t.Fatalf("all three place fields must be required, got %+v", item)
	}

	if _, _, err := BuildNearbyPlacesPrompt("", CategoryAttraction); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty location: err = %v, want ErrValidation", err)
	}
	if _, _, err := BuildNearbyPlacesPrompt("경복궁", PlaceCategory("카페")); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown category: err = %v, want ErrValidation", err)
	}
}

func TestParsePlaceCategory(t *testing.T) {
	cases := []struct {
		in      string
		want    PlaceCategory
		wantErr bool
	}{
		{"맛집", CategoryRestaurant, false},
		{"restaurant", CategoryRestaurant, false},
		{"명소", CategoryAttraction, false},
		{"attraction", CategoryAttraction, false},
		{" 맛집 ", CategoryRestaurant, false},
		{"cafe", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParsePlaceCategory(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParsePlaceCategory(%q) err = %v, want ErrValidation", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePlaceCategory(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestBuildItineraryHTMLPromptEmbedsScriptVerbatim(t *testing.T) {
	entries := []ScheduleEntry{{Date: "2024-05-01", Time: "10:00", Activity: "Palace visit", Location: "Gyeongbokgung"}}
	prompt := BuildItineraryHTMLPrompt(entries, []string{"Umbrella"}, "10,000원", "https://www.google.com/maps/search/?api=1&query=Gyeongbokgung")

	// The interaction script is the only script the document gets; it must be
	// present byte-for-byte.
	if !strings.Contains(prompt, interactionScript) {
		t.Fatal("interaction script not embedded verbatim")
	}
	for _, want := range []string{
		"Palace visit", "Umbrella", "10,000원",
		"scheduleButton", "checklistButton", "mapButton",
		"scheduleTab", "checklistTab", "mapTab",
		"https://www.google.com/maps/search/?api=1&query=Gyeongbokgung",
		"cdn.tailwindcss.com",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildItineraryHTMLPromptWithoutMapURL(t *testing.T) {
	entries := []ScheduleEntry{{Date: "2024-05-01", Time: "10:00", Activity: "산책"}}
	prompt := BuildItineraryHTMLPrompt(entries, nil, noExpenseMessage, "")

	if !strings.Contains(prompt, noRouteMessage) {
		t.Errorf("missing map-tab placeholder message")
	}
	if strings.Contains(prompt, "Google 지도에서 전체 경로 보기") {
		t.Errorf("route button instruction should be absent without a map URL")
	}
}

func TestBuildItineraryHTMLPromptOptionalFields(t *testing.T) {
	entries := []ScheduleEntry{
		{Date: "2024-05-01", Time: "10:00", Activity: "A", Cost: "₩5,000", Location: "L1"},
		{Date: "2024-05-01", Time: "12:00", Activity: "B"},
	}
	prompt := BuildItineraryHTMLPrompt(entries, nil, "5,000원", "")

	if !strings.Contains(prompt, "비용: ₩5,000") || !strings.Contains(prompt, "장소: L1") {
		t.Errorf("cost/location of the first entry should be rendered")
	}
	if strings.Contains(prompt, "활동: B, 비용:") {
		t.Errorf("entries without cost must not render a cost token")
	}
}
