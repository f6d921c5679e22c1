package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/opennacc/declaration-extractor/internal/common"
)

var (
	reFenced = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	reObject = regexp.MustCompile(`\{[\s\S]*\}`)
)

// ExtractJSON recovers the JSON object from a model response: direct parse
// first, then a markdown code fence, then the outermost object pattern.
// Anything unrecoverable is a malformed-response error (retryable once).
func ExtractJSON(response []byte) ([]byte, error) {
	trimmed := strings.TrimSpace(string(response))
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}
	if m := reFenced.FindStringSubmatch(trimmed); m != nil {
		if json.Valid([]byte(m[1])) {
			return []byte(m[1]), nil
		}
	}
	if m := reObject.FindString(trimmed); m != "" {
		if json.Valid([]byte(m)) {
			return []byte(m), nil
		}
	}
	return nil, common.NewAppError("LLM_MALFORMED", "could not extract valid JSON from response", common.ErrMalformedResponse)
}

// DecodeEnvelope parses a recovered JSON document into the section envelope.
// A document that is valid JSON but not an object is malformed as well.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, common.NewAppError("LLM_MALFORMED", "response is not a section envelope", common.ErrMalformedResponse)
	}
	return env, nil
}
