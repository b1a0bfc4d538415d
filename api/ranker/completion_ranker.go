package ranker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

const systemPrompt = "You are a helpful assistant that ranks cafes based on user preferences. Return only comma-separated cafe IDs."

// CompletionRanker asks an OpenAI-compatible chat-completions endpoint
// to order the candidates and parses the response as a comma-separated
// ID list. Candidates the response does not mention are appended in
// their original order; duplicate or unknown IDs are ignored.
type CompletionRanker struct {
	client      *resty.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewCompletionRanker builds a ranker against the given base URL. The
// timeout bounds the whole remote call; expiry surfaces as an error the
// caller is expected to recover from.
func NewCompletionRanker(baseURL, apiKey, model string, timeout time.Duration) *CompletionRanker {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &CompletionRanker{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxTokens:   200,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Rank submits the ranking prompt and reorders the candidates by the
// returned ID list.
func (r *CompletionRanker) Rank(ctx context.Context, cafes []cafe.Cafe, prefs models.Preferences) ([]cafe.Cafe, error) {
	req := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(cafes, prefs)},
		},
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	}

	var resp chatResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("completion service returned status %d", res.StatusCode())
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion response has no choices")
	}

	return ReorderByIDList(cafes, resp.Choices[0].Message.Content), nil
}

// buildPrompt summarizes the preferences and a compact per-cafe digest.
func buildPrompt(cafes []cafe.Cafe, prefs models.Preferences) string {
	var b strings.Builder
	b.WriteString("You are a cafe recommendation expert for Moradabad, India. Based on the following user preferences, rank these cafes from best to worst match (return only the cafe IDs in order, separated by commas):\n\n")
	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- Mood: %s\n", orNotSpecified(prefs.Mood))
	fmt.Fprintf(&b, "- Cuisine: %s\n", orNotSpecified(prefs.Cuisine))
	fmt.Fprintf(&b, "- Ambiance: %s\n", orNotSpecified(prefs.Ambiance))
	fmt.Fprintf(&b, "- Price Range: %s\n", orNotSpecified(prefs.PriceRange))
	fmt.Fprintf(&b, "- Occasion: %s\n", orNotSpecified(prefs.Occasion))
	fmt.Fprintf(&b, "- Time of Day: %s\n", orNotSpecified(prefs.TimeOfDay))
	fmt.Fprintf(&b, "- Dietary Restrictions: %s\n", orNone(prefs.DietaryRestrictions))
	fmt.Fprintf(&b, "- Amenities: %s\n", orNone(prefs.Amenities))
	b.WriteString("\nCafes:\n")
	for _, c := range cafes {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Cuisine: %s, Ambiance: %s, Price: %s, Rating: %.1f\n",
			c.ID, c.Name, c.Cuisine, c.Ambiance, c.PriceRange, c.Rating)
	}
	b.WriteString("\nReturn only the cafe IDs in order of best match (comma-separated, no explanations):")
	return b.String()
}

// ReorderByIDList emits the cafes named in the comma-separated response
// first, in response order, then appends unmentioned candidates in their
// original order.
func ReorderByIDList(cafes []cafe.Cafe, response string) []cafe.Cafe {
	remaining := make(map[string]int, len(cafes))
	for i, c := range cafes {
		remaining[c.ID] = i
	}

	ranked := make([]cafe.Cafe, 0, len(cafes))
	for _, raw := range strings.Split(response, ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		idx, ok := remaining[id]
		if !ok {
			continue
		}
		ranked = append(ranked, cafes[idx])
		delete(remaining, id)
	}
	for _, c := range cafes {
		if _, ok := remaining[c.ID]; ok {
			ranked = append(ranked, c)
		}
	}
	return ranked
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
