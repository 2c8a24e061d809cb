// Package ai adaptadores LLM. AnthropicAdvisor recomienda materiales del catálogo con la
// Messages API de Anthropic.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
)

var _ ports.MaterialAdvisor = (*AnthropicAdvisor)(nil)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicMessages = "/v1/messages"
	anthropicVersion  = "2023-06-01"
	defaultModel      = "claude-3-5-haiku-20241022"

	advisorSystemPrompt = `Eres asesor de una marmolería. Recibes el catálogo en JSON y la descripción de un proyecto.
Elige hasta 3 materiales del catálogo adecuados para el proyecto.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown) con esta estructura exacta:
{"suggestions": [{"product_id": <id numérico del catálogo>, "reason": "<motivo breve en español, máximo 150 caracteres>"}]}
No inventes ids: usa solo los del catálogo.`
)

// AnthropicConfig credenciales y destino. BaseURL vacío usa la API pública.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// AnthropicAdvisor implementa ports.MaterialAdvisor sobre resty.
type AnthropicAdvisor struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewAnthropicAdvisor construye el adaptador. Sin APIKey queda deshabilitado.
func NewAnthropicAdvisor(cfg AnthropicConfig) *AnthropicAdvisor {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = anthropicBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 25 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(cfg.Timeout)
	return &AnthropicAdvisor{apiKey: cfg.APIKey, model: cfg.Model, client: client}
}

// Enabled true si hay API key.
func (a *AnthropicAdvisor) Enabled() bool {
	return a.apiKey != ""
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type errorResponse struct {
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type catalogEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Application string `json:"application"`
	Finish      string `json:"finish"`
	Description string `json:"description"`
}

type suggestionsPayload struct {
	Suggestions []struct {
		ProductID int64  `json:"product_id"`
		Reason    string `json:"reason"`
	} `json:"suggestions"`
}

// SuggestMaterials envía catálogo y descripción; los ids se devuelven sin validar contra el catálogo.
func (a *AnthropicAdvisor) SuggestMaterials(ctx context.Context, description string, catalog []entity.Product) ([]ports.AdvisorSuggestion, error) {
	if !a.Enabled() {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}
	entries := make([]catalogEntry, 0, len(catalog))
	for _, p := range catalog {
		entries = append(entries, catalogEntry{
			ID: p.ID, Name: p.Name, Type: p.Type,
			Application: p.Application, Finish: p.Finish, Description: p.Description,
		})
	}
	catalogJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar catálogo: %w", err)
	}

	var (
		result  messageResponse
		failure errorResponse
	)
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(messageRequest{
			Model:     a.model,
			MaxTokens: 1024,
			System:    advisorSystemPrompt,
			Messages: []message{{
				Role:    "user",
				Content: fmt.Sprintf("Catálogo: %s\nProyecto: %s", catalogJSON, description),
			}},
		}).
		SetResult(&result).
		SetError(&failure).
		Post(anthropicMessages)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() {
		if failure.Error != nil {
			return nil, fmt.Errorf("AI: Anthropic error (%s): %s", failure.Error.Type, failure.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode())
	}
	if len(result.Content) == 0 {
		return nil, fmt.Errorf("AI: respuesta vacía")
	}

	raw := extractJSON(result.Content[0].Text)
	if raw == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo")
	}
	var payload suggestionsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: parsear sugerencias: %w", err)
	}
	out := make([]ports.AdvisorSuggestion, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		out = append(out, ports.AdvisorSuggestion{ProductID: s.ProductID, Reason: strings.TrimSpace(s.Reason)})
	}
	return out, nil
}

// jsonBlockRe desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON quita bloques markdown y devuelve el primer objeto JSON del texto.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+3:]
		if nl := strings.Index(rest, "\n"); nl != -1 {
			rest = rest[nl+1:]
		}
		if end := strings.LastIndex(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		text = strings.TrimSpace(rest)
	}
	return jsonBlockRe.FindString(text)
}
