package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"afaq-chatbot-be/pkg/llm"

	"github.com/hashicorp/go-retryablehttp"
)

const DefaultBaseURL = "https://api.groq.com/openai/v1"

type GroqProvider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	MaxTokens int
	Client    *http.Client
}

// Ensure GroqProvider implements LLMProvider
var _ llm.LLMProvider = &GroqProvider{}

func NewGroqProvider(apiKey, baseURL, modelName string, maxTokens int) *GroqProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = nil

	client := retryClient.StandardClient()
	client.Timeout = 60 * time.Second

	return &GroqProvider{
		APIKey:    apiKey,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ModelName: modelName,
		MaxTokens: maxTokens,
		Client:    client,
	}
}

// --- Request/Response structs (Chat Completions wire format) ---

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat sends the conversation to Groq's OpenAI-compatible endpoint and
// returns the trimmed content of the first choice.
func (g *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		MaxTokens: g.MaxTokens,
	}
	for _, opt := range opts {
		opt(options)
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		messages[i] = chatMessage{Role: msg.Role, Content: msg.Content}
	}

	payload, err := json.Marshal(chatRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("groq: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("groq: unexpected status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq: response contained no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
