package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/psworld143/ctf-tools/internal/config"
)

type Client struct {
	HTTP *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type anthropicRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
	System      string        `json:"system,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

const (
	defaultTimeout = 30 * time.Second

	anthropicVersion         = "2023-06-01"
	defaultAnthropicTokens   = 1024
	maxAnthropicOutputTokens = 4096
	maxChatOutputTokens      = 4000
	maxGeminiOutputTokens    = 8192
)

func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: defaultTimeout}}
}

// Generate sends a single prompt to the provider and returns the one text
// field its envelope carries. Every failure mode surfaces as an error; the
// caller collapses them into a single user-facing message.
func (c *Client) Generate(ctx context.Context, provider config.Provider, prompt string) (string, error) {
	if strings.TrimSpace(provider.URL) == "" {
		return "", errors.New("provider url is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt is required")
	}
	if timeout := provider.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	switch strings.ToLower(strings.TrimSpace(provider.Family)) {
	case config.FamilyAnthropic:
		return c.generateAnthropic(ctx, provider, prompt)
	case config.FamilyGoogle:
		return c.generateGemini(ctx, provider, prompt)
	default:
		// openai and openrouter share the chat-completions envelope.
		return c.generateChat(ctx, provider, prompt)
	}
}

func (c *Client) generateChat(ctx context.Context, provider config.Provider, prompt string) (string, error) {
	if strings.TrimSpace(provider.Model) == "" {
		return "", errors.New("provider model is required")
	}

	messages := []chatMessage{}
	if instructions := strings.TrimSpace(provider.Instructions); instructions != "" {
		messages = append(messages, chatMessage{Role: "system", Content: instructions})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:       provider.Model,
		Messages:    messages,
		Temperature: provider.Temperature,
		MaxTokens:   clampTokens(provider.MaxTokens, maxChatOutputTokens, maxChatOutputTokens),
	})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, provider.URL, body)
	if err != nil {
		return "", err
	}
	if key := resolveKey(provider); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("provider error: status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("provider response missing choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) generateAnthropic(ctx context.Context, provider config.Provider, prompt string) (string, error) {
	if strings.TrimSpace(provider.Model) == "" {
		return "", errors.New("provider model is required")
	}

	reqBody := anthropicRequest{
		Model:       provider.Model,
		MaxTokens:   clampTokens(provider.MaxTokens, defaultAnthropicTokens, maxAnthropicOutputTokens),
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: provider.Temperature,
	}
	if instructions := strings.TrimSpace(provider.Instructions); instructions != "" {
		reqBody.System = instructions
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, provider.URL, body)
	if err != nil {
		return "", err
	}
	if key := resolveKey(provider); key != "" {
		req.Header.Set("x-api-key", key)
	}
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("provider error: status %d", resp.StatusCode)
	}

	var out strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", errors.New("provider response missing text")
	}
	return out.String(), nil
}

func (c *Client) generateGemini(ctx context.Context, provider config.Provider, prompt string) (string, error) {
	text := prompt
	if instructions := strings.TrimSpace(provider.Instructions); instructions != "" {
		text = instructions + "\n\n" + prompt
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: text}}}},
		GenerationConfig: geminiGenConfig{
			MaxOutputTokens: clampTokens(provider.MaxTokens, maxGeminiOutputTokens, maxGeminiOutputTokens),
			Temperature:     provider.Temperature,
		},
	})
	if err != nil {
		return "", err
	}

	endpoint := provider.URL
	if key := resolveKey(provider); key != "" {
		endpoint += "?key=" + url.QueryEscape(key)
	}
	req, err := c.newRequest(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("provider error: status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("provider response missing candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ctf-tools")
	return req, nil
}

func clampTokens(configured *int, fallback, ceiling int) int {
	tokens := fallback
	if configured != nil && *configured > 0 {
		tokens = *configured
	}
	if tokens > ceiling {
		tokens = ceiling
	}
	return tokens
}

func resolveKey(provider config.Provider) string {
	key := strings.TrimSpace(expandEnv(provider.APIKey))
	if key == "" && provider.APIKeyEnv != "" {
		key = os.Getenv(provider.APIKeyEnv)
	}
	return key
}

func expandEnv(value string) string {
	const token = "env:"
	const prefix = "env."
	expanded := expandEnvTemplates(value)
	if strings.HasPrefix(expanded, prefix) {
		return os.Getenv(strings.TrimPrefix(expanded, prefix))
	}
	parts := strings.Split(expanded, token)
	if len(parts) == 1 {
		return expanded
	}

	var out strings.Builder
	out.WriteString(parts[0])
	for i := 1; i < len(parts); i++ {
		segment := parts[i]
		name := segment
		rest := ""
		for idx, r := range segment {
			if r == '/' || r == ' ' || r == '\t' {
				name = segment[:idx]
				rest = segment[idx:]
				break
			}
		}
		out.WriteString(os.Getenv(name))
		out.WriteString(rest)
	}
	return out.String()
}

var envTemplateRe = regexp.MustCompile(`\{\{\s*env\.([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

func expandEnvTemplates(value string) string {
	return envTemplateRe.ReplaceAllStringFunc(value, func(match string) string {
		sub := envTemplateRe.FindStringSubmatch(match)
		if len(sub) < 2 {
			return ""
		}
		return os.Getenv(sub[1])
	})
}
