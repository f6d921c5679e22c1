package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/enums"
	"github.com/opennacc/declaration-extractor/internal/extract"
	"github.com/opennacc/declaration-extractor/internal/llm"
	"github.com/opennacc/declaration-extractor/internal/retry"
	"github.com/opennacc/declaration-extractor/internal/validate"
)

// stubClient answers every section with a minimal valid envelope and tracks
// call volume and in-flight concurrency.
type stubClient struct {
	calls       atomic.Int64
	inFlight    atomic.Int64
	maxInFlight atomic.Int64

	mu       sync.Mutex
	requests []llm.SectionRequest
}

func (s *stubClient) ExtractSection(_ context.Context, req llm.SectionRequest) ([]byte, error) {
	cur := s.inFlight.Add(1)
	for {
		peak := s.maxInFlight.Load()
		if cur <= peak || s.maxInFlight.CompareAndSwap(peak, cur) {
			break
		}
	}
	defer s.inFlight.Add(-1)
	s.calls.Add(1)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	def, _ := llm.SectionFor(constants.Section(req.Section))
	switch {
	case len(def.Fields) > 0 && len(def.RowFields) > 0:
		if req.Section == string(constants.SectionIdentity) {
			return []byte(`{"fields":{"first_name":"สมชาย","last_name":"ใจดี"},"rows":[],"confidence":0.9}`), nil
		}
		return []byte(`{"fields":{},"rows":[],"confidence":0.9}`), nil
	case len(def.Fields) > 0:
		return []byte(`{"fields":{},"confidence":0.9}`), nil
	default:
		return []byte(`{"rows":[],"confidence":0.9}`), nil
	}
}

func testProcessor(client llm.SectionClient, mode constants.ExtractionMode, maxCalls int) *Processor {
	domains := make(map[string][]enums.Entry, len(constants.AllDomains))
	for _, d := range constants.AllDomains {
		domains[d] = []enums.Entry{{ID: 1, Label: d}}
	}
	registry := enums.New(domains)

	cfg := common.ExtractConfig{Mode: mode, ConfidenceThreshold: 0.75, MaxSourceChars: 100000}
	extractor := extract.NewExtractor(cfg, retry.Config{MaxAttempts: 2, BaseDelay: 1}, registry, client, nil)
	assembler := assemble.NewAssembler(nil)
	validator := validate.NewValidator(registry, validate.DefaultTolerance, nil)
	return NewProcessor(cfg, common.PipelineConfig{MaxConcurrentCalls: maxCalls}, extractor, assembler, validator, nil)
}

func TestProcessDocumentCombined(t *testing.T) {
	client := &stubClient{}
	p := testProcessor(client, constants.ModeCombined, 4)

	result := p.ProcessDocument(context.Background(), DocumentInput{
		DocumentID: "doc-1",
		NaccID:     7,
		Pages:      []string{"page one text", "page two text"},
	})

	assert.Equal(t, constants.StatusSuccess, result.Status)
	assert.Equal(t, int64(len(constants.AllSections)), client.calls.Load())
	require.NotNil(t, result.Records)
	require.Len(t, result.Records.Tables["submitter"], 1)
	assert.Len(t, result.Verdicts, len(validate.RuleOrder))
	assert.Len(t, result.Sections, len(constants.AllSections))

	// combined mode sends the whole document once per section
	for _, req := range client.requests {
		assert.Zero(t, req.PageIndex)
		assert.Contains(t, req.SourceText, "page one text")
		assert.Contains(t, req.SourceText, PageBreak)
	}
}

func TestProcessDocumentPerPage(t *testing.T) {
	client := &stubClient{}
	p := testProcessor(client, constants.ModePerPage, 8)

	result := p.ProcessDocument(context.Background(), DocumentInput{
		DocumentID: "doc-1",
		NaccID:     7,
		Pages:      []string{"หน้า 1", "หน้า 2"},
	})

	assert.Equal(t, constants.StatusSuccess, result.Status)
	assert.Equal(t, int64(2*len(constants.AllSections)), client.calls.Load())
	require.NotNil(t, result.Records)

	// identity fields were found on both pages
	for _, s := range result.Sections {
		if s.Section == constants.SectionIdentity {
			assert.Equal(t, []int{1, 2}, s.Provenance)
		}
	}
}

func TestProcessDocumentConcurrencyBounded(t *testing.T) {
	client := &stubClient{}
	p := testProcessor(client, constants.ModePerPage, 2)

	_ = p.ProcessDocument(context.Background(), DocumentInput{
		DocumentID: "doc-1",
		NaccID:     7,
		Pages:      []string{"a", "b", "c"},
	})

	assert.LessOrEqual(t, client.maxInFlight.Load(), int64(2))
	assert.Equal(t, int64(3*len(constants.AllSections)), client.calls.Load())
}

func TestProcessDocumentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{}
	p := testProcessor(client, constants.ModeCombined, 2)

	result := p.ProcessDocument(ctx, DocumentInput{
		DocumentID: "doc-1",
		NaccID:     7,
		Pages:      []string{"text"},
	})

	assert.Equal(t, constants.StatusFailed, result.Status)
	assert.NotEmpty(t, result.Error)
}

// noNameClient never returns a submitter name, so assembly cannot anchor the
// document.
type noNameClient struct{ stubClient }

func (c *noNameClient) ExtractSection(ctx context.Context, req llm.SectionRequest) ([]byte, error) {
	if req.Section == string(constants.SectionIdentity) {
		c.calls.Add(1)
		return []byte(`{"fields":{},"rows":[],"confidence":0.9}`), nil
	}
	return c.stubClient.ExtractSection(ctx, req)
}

func TestProcessDocumentAssemblyFailure(t *testing.T) {
	client := &noNameClient{}
	p := testProcessor(client, constants.ModeCombined, 4)

	result := p.ProcessDocument(context.Background(), DocumentInput{
		DocumentID: "doc-1",
		NaccID:     7,
		Pages:      []string{"text"},
	})

	assert.Equal(t, constants.StatusFailed, result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Records)
	// sections survive for inspection even when assembly fails
	assert.Len(t, result.Sections, len(constants.AllSections))
}
