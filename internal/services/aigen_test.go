package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGenerator(serverURL string) *TimetableGenerator {
	return &TimetableGenerator{
		apiKey:     "test-key",
		baseURL:    serverURL,
		model:      "test-model",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func completionReply(content string) string {
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	raw, _ := json.Marshal(reply)
	return string(raw)
}

func TestGenerate_ParsesWellFormedReply(t *testing.T) {
	timetableJSON := `{
		"title": "Web Dev Plan",
		"description": "Four weeks of web development",
		"goals": ["Web Development"],
		"schedule": {
			"Monday": [{"time": "9:00-10:30", "subject": "HTML", "task": "Basics", "resources": ["MDN"]}]
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(timetableJSON)))
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)
	got, err := g.Generate(context.Background(), "learn web development", []string{"Web Development"}, "4 weeks")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got.Title != "Web Dev Plan" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if len(got.Schedule["Monday"]) != 1 || got.Schedule["Monday"][0].Subject != "HTML" {
		t.Fatalf("unexpected Monday schedule: %+v", got.Schedule["Monday"])
	}
}

func TestGenerate_NonJSONReplyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply("Sure! Here is a timetable for you: Monday...")))
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)
	goals := []string{"Data Science"}
	got, err := g.Generate(context.Background(), "learn data science", goals, "4 weeks")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := FallbackTimetable(goals)
	if got.Title != want.Title || got.Description != want.Description {
		t.Fatalf("expected fallback timetable, got %+v", got)
	}
	if len(got.Schedule) != 7 {
		t.Fatalf("fallback schedule must cover all 7 days, got %d", len(got.Schedule))
	}
	if got.Goals[0] != "Data Science" {
		t.Fatalf("fallback must carry the requested goals, got %v", got.Goals)
	}
}

func TestGenerate_APIErrorIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)
	if _, err := g.Generate(context.Background(), "anything", nil, ""); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestFallbackTimetable_DefaultsGoals(t *testing.T) {
	got := FallbackTimetable(nil)
	if len(got.Goals) != 1 || got.Goals[0] != "Study effectively" {
		t.Fatalf("unexpected default goals %v", got.Goals)
	}
}
