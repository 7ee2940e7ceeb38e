package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/domain"
)

const (
	summaryPromptLen = 200 // candidate summary is cut to this many runes in the prompt
	minSelections    = 12
	maxSelections    = 18
)

// Curator uses LLM to select and rewrite the articles of a digest
type Curator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewCurator creates a new LLM curator
func NewCurator(cfg config.LLMConfig) *Curator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Curator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You are an expert newspaper editor curating a personalised news digest.

Consider the reader's political leaning when:
- Selecting opinion pieces that align with their perspective
- Framing summaries with appropriate context
- Prioritising sources that match their viewpoint for opinion/analysis
- Keep hard news factual regardless of leaning

Return ONLY valid JSON, no markdown fences or other text.`

// Curate sends candidates to the model and returns its selection.
// Candidates are referenced by their position in req.Candidates. Transport failures are
// reported as domain.ErrCurationUnavailable, unusable replies as domain.ErrCurationMalformed.
// There are no retries, the caller decides what a failure means for the digest.
func (c *Curator) Curate(ctx context.Context, req domain.CurationRequest) (domain.Curation, error) {
	if len(req.Candidates) == 0 {
		return domain.Curation{}, fmt.Errorf("%w: no candidates to curate", domain.ErrCurationUnavailable)
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: c.buildPrompt(req)},
		},
	}

	if c.config.UseJSONSchema {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "digest_curation",
				Schema: responseSchema(),
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return domain.Curation{}, fmt.Errorf("%w: llm request failed: %w", domain.ErrCurationUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return domain.Curation{}, fmt.Errorf("%w: no response from llm", domain.ErrCurationUnavailable)
	}

	res, err := ParseCuration(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.Curation{}, err
	}
	lgr.Printf("[DEBUG] curation selected %d of %d candidates, tokens used %d",
		len(res.Selections), len(req.Candidates), resp.Usage.TotalTokens)
	return res, nil
}

// buildPrompt creates the user message listing the reader profile and all candidates
func (c *Curator) buildPrompt(req domain.CurationRequest) string {
	var sb strings.Builder

	frequency := req.Frequency
	if frequency == "" {
		frequency = domain.FrequencyWeekly
	}
	coverage := "past week"
	if frequency == domain.FrequencyDaily {
		coverage = "past 24 hours"
	}

	sb.WriteString(fmt.Sprintf("You are curating a %s news digest.\n\n", frequency))
	sb.WriteString(fmt.Sprintf("The reader's political leaning is: %s\n", req.Leaning))

	var cats []string
	for _, cat := range req.Categories {
		if cat.Enabled {
			cats = append(cats, fmt.Sprintf("%s (weight: %d/10)", cat.Category, cat.Weight))
		}
	}
	sb.WriteString(fmt.Sprintf("Their preferred categories (with importance weights): %s\n", strings.Join(cats, ", ")))
	sb.WriteString(fmt.Sprintf("This digest covers the %s.\n\n", coverage))

	sb.WriteString("Here are the available articles:\n")
	for i, a := range req.Candidates {
		summary := truncate(a.Summary, summaryPromptLen)
		if summary == "" {
			summary = "No summary"
		}
		sb.WriteString(fmt.Sprintf("[%d] %q - %s (%s) | %s\n", i, a.Title, a.SourceName, a.Category, summary))
	}

	sb.WriteString(fmt.Sprintf(`
Select the %d-%d most important and interesting articles for this reader's digest. For each selected article, provide:
1. A compelling newspaper-style headline (can differ from the original)
2. A subtitle/deck (one line)
3. A 2-4 paragraph summary written in quality journalistic style
4. An importance score from 1-10 (10 = lead story)
5. Which original article index it corresponds to

Format your response as JSON:
{
  "digest_title": "string, a newspaper masthead subtitle for today, e.g. 'Week in Review: [theme]'",
  "articles": [
    {"index": 0, "headline": "string", "subtitle": "string", "summary": "string (2-4 paragraphs)", "importance": 8, "category": "string"}
  ]
}`, minSelections, maxSelections))
	return sb.String()
}

// responseSchema describes the expected reply for models supporting structured output
func responseSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	return r.Reflect(&curationResponse{})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
