package openai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/llm"
)

// ExtractSection implements llm.SectionClient using text-only chat/completions
// with response_format json_object. It returns the raw content of the first
// choice; JSON recovery, schema validation and normalization belong to the
// extractor.
func (c *Client) ExtractSection(ctx context.Context, req llm.SectionRequest) ([]byte, error) {
	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid)
	start := time.Now()

	c.log.Info("llm.section.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"doc_id", req.DocumentID,
		"section", req.Section,
		"page", req.PageIndex,
		"text_len", len(req.SourceText),
	)

	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.section.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.section.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, common.NewAppError("LLM_MALFORMED", "decode completion response", common.ErrMalformedResponse)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.section.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, common.NewAppError("LLM_MALFORMED", "no choices in completion response", common.ErrMalformedResponse)
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	c.log.Info("llm.section.ok",
		"req_id", rid,
		"doc_id", req.DocumentID,
		"section", req.Section,
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(content), nil
}
