package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Family selects the request/response envelope used for a provider.
const (
	FamilyOpenAI     = "openai"
	FamilyAnthropic  = "anthropic"
	FamilyGoogle     = "google"
	FamilyOpenRouter = "openrouter"
)

// Provider describes one remote text-generation endpoint. Credentials are
// either a literal value (which may use env: / {{env.NAME}} expansion) or an
// environment variable name in APIKeyEnv; they are never baked into source.
type Provider struct {
	Name           string   `toml:"name"`
	DisplayName    string   `toml:"display_name"`
	Family         string   `toml:"family"`
	URL            string   `toml:"url"`
	Model          string   `toml:"model"`
	APIKey         string   `toml:"api_key"`
	APIKeyEnv      string   `toml:"api_key_env"`
	MaxTokens      *int     `toml:"max_tokens"`
	Temperature    *float64 `toml:"temperature"`
	Priority       int      `toml:"priority"`
	Enabled        *bool    `toml:"enabled"`
	Instructions   string   `toml:"instructions"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

type providersFile struct {
	Providers []Provider `toml:"provider"`
}

func (p Provider) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Providers returns the configured provider list sorted by ascending
// priority. When path is empty or the file does not exist, the built-in
// defaults are returned.
func Providers(path string) ([]Provider, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sortedByPriority(defaultProviders()), nil
		}
		return nil, err
	}

	var file providersFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, provider := range file.Providers {
		if strings.TrimSpace(provider.Name) == "" {
			return nil, fmt.Errorf("%s: provider %d has no name", path, i+1)
		}
		if err := validateFamily(provider.Family); err != nil {
			return nil, fmt.Errorf("%s: provider %q: %w", path, provider.Name, err)
		}
		if strings.TrimSpace(provider.URL) == "" {
			return nil, fmt.Errorf("%s: provider %q has no url", path, provider.Name)
		}
	}
	return sortedByPriority(file.Providers), nil
}

// Best returns the highest-priority enabled provider, or false when none
// is configured.
func Best(providers []Provider) (Provider, bool) {
	for _, provider := range providers {
		if provider.IsEnabled() {
			return provider, true
		}
	}
	return Provider{}, false
}

// DefaultPath is where the provider file lives unless overridden:
// $XDG_CONFIG_HOME/ctf-tools/providers.toml, falling back to
// ~/.config/ctf-tools/providers.toml.
func DefaultPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "ctf-tools", "providers.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("ctf-tools", "providers.toml")
	}
	return filepath.Join(home, ".config", "ctf-tools", "providers.toml")
}

func validateFamily(family string) error {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "", FamilyOpenAI, FamilyAnthropic, FamilyGoogle, FamilyOpenRouter:
		return nil
	default:
		return fmt.Errorf("unknown provider family %q", family)
	}
}

func sortedByPriority(providers []Provider) []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func defaultProviders() []Provider {
	maxGroq := 32768
	maxGemini := 8192
	maxClaude := 4096
	maxRouter := 4000
	temp := 0.7

	return []Provider{
		{
			Name:        "groq_llama_33_70b",
			DisplayName: "Groq LLaMA 3.3 70B",
			Family:      FamilyOpenAI,
			URL:         "https://api.groq.com/openai/v1/chat/completions",
			Model:       "llama-3.3-70b-versatile",
			APIKeyEnv:   "GROQ_API_KEY",
			MaxTokens:   &maxGroq,
			Temperature: &temp,
			Priority:    10,
		},
		{
			Name:        "google_gemini_20_flash",
			DisplayName: "Google Gemini 2.0 Flash",
			Family:      FamilyGoogle,
			URL:         "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent",
			Model:       "gemini-2.0-flash",
			APIKeyEnv:   "GEMINI_API_KEY",
			MaxTokens:   &maxGemini,
			Temperature: &temp,
			Priority:    20,
		},
		{
			Name:        "anthropic_claude_sonnet",
			DisplayName: "Anthropic Claude Sonnet",
			Family:      FamilyAnthropic,
			URL:         "https://api.anthropic.com/v1/messages",
			Model:       "claude-3-5-sonnet-latest",
			APIKeyEnv:   "ANTHROPIC_API_KEY",
			MaxTokens:   &maxClaude,
			Temperature: &temp,
			Priority:    30,
		},
		{
			Name:        "openrouter_gpt35",
			DisplayName: "OpenRouter GPT-3.5-turbo",
			Family:      FamilyOpenRouter,
			URL:         "https://openrouter.ai/api/v1/chat/completions",
			Model:       "openai/gpt-3.5-turbo",
			APIKeyEnv:   "OPENROUTER_API_KEY",
			MaxTokens:   &maxRouter,
			Temperature: &temp,
			Priority:    50,
		},
	}
}
