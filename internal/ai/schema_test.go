package ai

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestToGenaiSchema(t *testing.T) {
	s := ObjectSchema(map[string]*Schema{
		"schedule": ArraySchema("일정", ObjectSchema(map[string]*Schema{
			"date":     StringSchema("날짜"),
			"activity": StringSchema("활동"),
		}, "date", "activity")),
		"checklist": ArraySchema("준비물", StringSchema("항목")),
	}, "schedule", "checklist")

	got := toGenaiSchema(s)
	if got.Type != genai.TypeObject {
		t.Fatalf("root type = %v, want object", got.Type)
	}
	if len(got.Required) != 2 {
		t.Fatalf("root required = %v", got.Required)
	}
	sched, ok := got.Properties["schedule"]
	if !ok || sched.Type != genai.TypeArray {
		t.Fatalf("schedule property missing or not array: %+v", sched)
	}
	if sched.Items == nil || sched.Items.Type != genai.TypeObject {
		t.Fatalf("schedule items = %+v, want object", sched.Items)
	}
	if sched.Items.Properties["date"].Description != "날짜" {
		t.Errorf("date description not carried over")
	}
	check := got.Properties["checklist"]
	if check.Items == nil || check.Items.Type != genai.TypeString {
		t.Fatalf("checklist items = %+v, want string", check.Items)
	}
}

func TestCleanJSONString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n[1,2]\n```", "[1,2]"},
		{"```html\n<!DOCTYPE html><html></html>\n```", "<!DOCTYPE html><html></html>"},
		{"  \n{\"a\":1}\n  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := cleanJSONString(tc.in); got != tc.want {
			t.Errorf("cleanJSONString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSchemaInstructionDeterministic(t *testing.T) {
	s := ObjectSchema(map[string]*Schema{
		"b": StringSchema("second"),
		"a": StringSchema("first"),
	}, "a")

	first := schemaInstruction(s)
	for i := 0; i < 10; i++ {
		if schemaInstruction(s) != first {
			t.Fatal("schema instruction is not deterministic")
		}
	}
	if !strings.Contains(first, "\"a\": (required)") {
		t.Errorf("required marker missing:\n%s", first)
	}
	if !strings.Contains(first, "\"b\": (optional)") {
		t.Errorf("optional marker missing:\n%s", first)
	}
}
