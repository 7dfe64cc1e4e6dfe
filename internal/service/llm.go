package service

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
)

// RecipeExtraction is what the extraction model returns for a webpage:
// a recipe-shaped payload plus a folder suggestion.
type RecipeExtraction struct {
	Recipe          RecipePayload `json:"recipe"`
	SuggestedFolder string        `json:"suggested_folder"`
}

// LLMService turns an arbitrary recipe webpage into a structured recipe
// via the DeepSeek chat completions API. Its output is untrusted input
// to the store and goes through the same validation as manual entry.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService reads the API key from DEEPSEEK_API_KEY or the file
// named by DEEPSEEK_API_KEY_FILE.
func NewLLMService() (*LLMService, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
		}
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("DEEPSEEK_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the DeepSeek API
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

const extractionSystemPrompt = `You are a recipe extraction assistant. Given the URL of a recipe webpage, respond only with JSON of the form:
{
    "recipe": {
        "title": "Recipe title",
        "image_uri": "",
        "ingredients": [
            {"name": "flour", "amount": "2 cups", "category": "grains"}
        ],
        "instructions": ["Step 1", "Step 2"],
        "servings": "4",
        "prep_time": "15 min",
        "cook_time": "30 min",
        "calories_per_serving": 350,
        "protein": 15,
        "carbs": 45,
        "fat": 12,
        "fiber": 4
    },
    "suggested_folder": "One of: Breakfast, Lunch, Dinner, Desserts"
}

Ingredient category MUST be one of: produce, meats, dairy, grains, spices, canned, frozen, beverages, condiments, other.
calories_per_serving, protein, carbs, fat and fiber must be numbers, not strings.`

// ExtractRecipeFromURL asks the model to read sourceURL and return the
// recipe it describes. The store is never touched on failure; the caller
// decides about retries.
func (s *LLMService) ExtractRecipeFromURL(ctx context.Context, sourceURL string) (*RecipeExtraction, error) {
	messages := []Message{
		{Role: "system", Content: extractionSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Extract the recipe from: %s", sourceURL)},
	}

	reqBody := Request{
		Model:          "deepseek-chat",
		Messages:       messages,
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	var extraction RecipeExtraction
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &extraction); err != nil {
		return nil, fmt.Errorf("failed to parse extracted recipe: %w", err)
	}
	if strings.TrimSpace(extraction.Recipe.Title) == "" {
		return nil, fmt.Errorf("extraction returned no recipe title")
	}
	return &extraction, nil
}
