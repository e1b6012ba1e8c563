// Package extraction calls an external AI service to produce a best-effort
// structured resume guess from free text. The pipeline treats its output as
// untrusted: anything that fails JSON or schema validation collapses to an
// empty result that the normalizer handles like an empty record.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-synth/internal/schemas"
)

// DefaultModel is the extraction model used unless configured otherwise.
const DefaultModel = "gemini-2.0-flash"

const extractionPrompt = `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Extract the resume below into JSON-resume form with these top-level keys:
basics (name, label, email, phone, url, summary, location, profiles),
work, education, projects, skills, publications, awards, certificates,
volunteer, languages, interests, references.
Dates use "YYYY-MM" form. Omit fields you cannot find; absent sections are empty lists.
Never invent placeholder values and never emit an empty string for a field you do not know.
Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Resume text:
"""
%s
"""
`

// Usage reports token consumption for one extraction call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Total returns the combined token count.
func (u Usage) Total() int {
	return u.PromptTokens + u.CompletionTokens
}

// Extractor turns free text into a structured resume guess.
type Extractor interface {
	Extract(ctx context.Context, text string) (map[string]any, Usage, error)
	Close() error
}

// GeminiExtractor implements Extractor on Google Gemini.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates an extractor. An empty model name selects
// DefaultModel.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiExtractor{client: client, model: model}, nil
}

// Extract queries the model and validates the response against the resume
// schema. Any failure returns an empty mapping and zero usage alongside the
// error; callers can feed the empty mapping straight into normalization.
func (e *GeminiExtractor) Extract(ctx context.Context, text string) (map[string]any, Usage, error) {
	model := e.client.GenerativeModel(e.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		return map[string]any{}, Usage{}, fmt.Errorf("failed to generate content: %w", err)
	}

	usage := Usage{}
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	raw, err := textFromResponse(resp)
	if err != nil {
		return map[string]any{}, usage, err
	}
	raw = CleanJSONBlock(raw)

	if err := schemas.ValidateResume(raw); err != nil {
		return map[string]any{}, usage, fmt.Errorf("extracted resume failed schema validation: %w", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return map[string]any{}, usage, fmt.Errorf("failed to decode extracted resume: %w", err)
	}
	return result, usage, nil
}

// Close releases the underlying client.
func (e *GeminiExtractor) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return sb.String(), nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		// A longer language tag ("json5", "jsonc") runs to the end of the line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if strings.TrimSpace(firstLine) != "" && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
