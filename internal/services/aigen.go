package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/campusbridge/campusbridge/internal/logger"
	"github.com/campusbridge/campusbridge/internal/types"
)

const timetableSystemPrompt = `You are an AI timetable generator for students. Create a detailed study timetable based on the user's goals and prompt.

Your response should be a JSON object with this structure:
{
  "title": "Study timetable title",
  "description": "Brief description of the timetable",
  "goals": ["goal1", "goal2", "goal3"],
  "schedule": {
    "Monday": [
      {"time": "9:00-10:30", "subject": "Subject name", "task": "What to do", "resources": ["resource1", "resource2"]},
      {"time": "11:00-12:30", "subject": "Subject name", "task": "What to do", "resources": ["resource1"]}
    ],
    "Tuesday": [...],
    ... for all 7 days
  }
}

Make the timetable realistic, balanced, and achievable. Include breaks, variety in subjects/topics, and practical learning resources.
Duration should be spread across %s.
Focus on the goals: %s.`

// TimetableGenerator calls a chat-completions endpoint and parses the reply
// into a timetable. It is a single awaited request: no retries, no streaming.
type TimetableGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewTimetableGenerator() (*TimetableGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4.1-2025-04-14"
	}

	return &TimetableGenerator{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate builds the prompt from the user's free text, goals and duration
// and asks the model for a timetable. A reply that does not parse as the
// expected JSON shape falls back to a fixed 7-day schedule rather than
// surfacing an error; a failed request is still an error.
func (g *TimetableGenerator) Generate(ctx context.Context, prompt string, goals []string, duration string) (types.GeneratedTimetable, error) {
	if duration == "" {
		duration = "4 weeks"
	}

	goalText := "general study goals"
	if len(goals) > 0 {
		goalText = strings.Join(goals, ", ")
	}

	reqBody := chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(timetableSystemPrompt, duration, goalText)},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return types.GeneratedTimetable{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return types.GeneratedTimetable{}, err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return types.GeneratedTimetable{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return types.GeneratedTimetable{}, fmt.Errorf("chat completions API error: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return types.GeneratedTimetable{}, err
	}

	if len(completion.Choices) == 0 {
		return types.GeneratedTimetable{}, fmt.Errorf("chat completions API returned no choices")
	}

	content := completion.Choices[0].Message.Content

	var timetable types.GeneratedTimetable
	if err := json.Unmarshal([]byte(content), &timetable); err != nil || len(timetable.Schedule) == 0 {
		logger.Warn("AI reply was not a parsable timetable, using fallback schedule", "error", err)
		return FallbackTimetable(goals), nil
	}

	return timetable, nil
}

// FallbackTimetable is the canned schedule substituted when the model's
// reply cannot be parsed.
func FallbackTimetable(goals []string) types.GeneratedTimetable {
	if len(goals) == 0 {
		goals = []string{"Study effectively"}
	}

	return types.GeneratedTimetable{
		Title:       "Custom Study Timetable",
		Description: "AI-generated timetable based on your goals",
		Goals:       goals,
		Schedule: types.Schedule{
			"Monday":    {{Time: "9:00-10:30", Subject: "Study Session", Task: "Focus on your goals", Resources: []string{"Books", "Online courses"}}},
			"Tuesday":   {{Time: "9:00-10:30", Subject: "Study Session", Task: "Continue learning", Resources: []string{"Practice exercises"}}},
			"Wednesday": {{Time: "9:00-10:30", Subject: "Study Session", Task: "Review progress", Resources: []string{"Notes", "Videos"}}},
			"Thursday":  {{Time: "9:00-10:30", Subject: "Study Session", Task: "Hands-on practice", Resources: []string{"Projects"}}},
			"Friday":    {{Time: "9:00-10:30", Subject: "Study Session", Task: "Apply knowledge", Resources: []string{"Real projects"}}},
			"Saturday":  {{Time: "10:00-11:30", Subject: "Review", Task: "Weekly review", Resources: []string{"Summary notes"}}},
			"Sunday":    {{Time: "10:00-11:00", Subject: "Planning", Task: "Plan next week", Resources: []string{"Calendar", "Goals"}}},
		},
	}
}
