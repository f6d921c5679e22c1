package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/enums"
	"github.com/opennacc/declaration-extractor/internal/llm"
	"github.com/opennacc/declaration-extractor/internal/retry"
)

type fakeClient struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeClient) ExtractSection(_ context.Context, _ llm.SectionRequest) ([]byte, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return []byte(f.responses[i]), nil
}

func testExtractor(client llm.SectionClient) *Extractor {
	registry := enums.New(map[string][]enums.Entry{
		constants.DomainRelationship: {
			{ID: 1, Label: "บิดา"},
			{ID: 2, Label: "มารดา"},
		},
		constants.DomainStatementType: {
			{ID: 1, Label: "ทรัพย์สิน"},
		},
	})
	cfg := common.ExtractConfig{
		Mode:                constants.ModePerPage,
		ConfidenceThreshold: 0.75,
		MaxSourceChars:      100000,
	}
	return NewExtractor(cfg, retry.Config{MaxAttempts: 3, BaseDelay: 1}, registry, client, nil)
}

func rawRelatives() entity.RawSection {
	return entity.RawSection{
		DocumentID: "doc-1",
		NaccID:     12345,
		Section:    constants.SectionRelatives,
		SourceText: "บิดา นายสมชาย ใจดี อายุ 70 ปี",
		PageIndex:  1,
		PageCount:  3,
	}
}

func TestExtractRelativesSuccess(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"rows":[
			{"relationship_id":"บิดา","first_name":"สมชาย","last_name":"ใจดี","age":70},
			{"relationship_id":2,"first_name":"สมหญิง","last_name":"ใจดี"}
		],"confidence":0.9}`,
	}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	require.Equal(t, constants.StatusSuccess, rec.Status)
	require.Len(t, rec.Rows, 2)
	assert.Equal(t, 1, rec.Rows[0]["relationship_id"])
	assert.Equal(t, 2, rec.Rows[1]["relationship_id"])
	assert.Equal(t, 70, rec.Rows[0]["age"])
	assert.Empty(t, rec.Anomalies)
	assert.InDelta(t, 0.9, rec.Confidence, 1e-9)
	assert.Equal(t, 1, client.calls)
}

func TestExtractRecoversFencedJSON(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Here you go:\n```json\n" +
			`{"rows":[{"relationship_id":1,"first_name":"สมชาย"}],"confidence":0.8}` +
			"\n```",
	}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	require.Equal(t, constants.StatusSuccess, rec.Status)
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, 1, client.calls)
}

func TestExtractMalformedRetriedOnce(t *testing.T) {
	client := &fakeClient{responses: []string{
		"sorry, I can't do that",
		`{"rows":[{"relationship_id":1,"first_name":"สมชาย"}],"confidence":0.8}`,
	}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, 2, client.calls)
}

func TestExtractMalformedTwiceFails(t *testing.T) {
	client := &fakeClient{responses: []string{"garbage", "more garbage"}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	assert.Equal(t, constants.StatusFailed, rec.Status)
	assert.NotEmpty(t, rec.Error)
	assert.Equal(t, 2, client.calls)
}

func TestExtractTransientThenSuccess(t *testing.T) {
	client := &fakeClient{
		errs: []error{common.NewAppError("LLM_UNAVAILABLE", "503", common.ErrTransient)},
		responses: []string{
			"",
			`{"rows":[{"relationship_id":1,"first_name":"สมชาย"}],"confidence":0.8}`,
		},
	}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, 2, client.calls)
}

func TestExtractUnresolvedEnumBecomesAnomaly(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"rows":[
			{"relationship_id":"เพื่อนบ้าน","first_name":"สมปอง"},
			{"relationship_id":1,"first_name":"สมชาย"}
		],"confidence":0.9}`,
	}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	// the unresolvable row is dropped because relationship_id is required
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, 1, rec.Rows[0]["relationship_id"])
	require.Len(t, rec.Anomalies, 1)
	assert.Equal(t, "relationship_id", rec.Anomalies[0].Field)
	assert.Equal(t, constants.StatusPartial, rec.Status)
	assert.Less(t, rec.Confidence, 0.75)
}

func TestExtractAllRequiredRowsLostFailsRecord(t *testing.T) {
	// the only row loses its required enum, so nothing required survives
	client := &fakeClient{responses: []string{
		`{"rows":[{"relationship_id":"เพื่อนบ้าน","first_name":"สมปอง"}],"confidence":0.9}`,
	}}
	e := testExtractor(client)

	rec := e.Extract(context.Background(), rawRelatives())
	assert.Equal(t, constants.StatusFailed, rec.Status)
	assert.Empty(t, rec.Rows)
	assert.NotEmpty(t, rec.Error)
	require.Len(t, rec.Anomalies, 1)
}

func TestExtractRequiredScalarsMissingFailsRecord(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"fields":{"age":55},"rows":[],"confidence":0.9}`,
	}}
	e := testExtractor(client)

	raw := rawRelatives()
	raw.Section = constants.SectionIdentity
	rec := e.Extract(context.Background(), raw)
	assert.Equal(t, constants.StatusFailed, rec.Status)
	// both name fields are reported, the resolved age alone does not rescue it
	assert.Len(t, rec.Anomalies, 2)
}

func TestExtractEmptyTextSkipsCall(t *testing.T) {
	client := &fakeClient{}
	e := testExtractor(client)

	raw := rawRelatives()
	raw.SourceText = ""
	rec := e.Extract(context.Background(), raw)
	assert.Equal(t, constants.StatusFailed, rec.Status)
	assert.Equal(t, 0, client.calls)
}

func TestExtractTaxNormalization(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"fields":{"tax_year":2023,"assessed_income":"1,234,567.89","tax_paid":50000},
		  "rows":[{"statement_type_id":1,"valuation_submitter":"2,000,000"}],
		  "confidence":0.95}`,
	}}
	e := testExtractor(client)

	raw := rawRelatives()
	raw.Section = constants.SectionTax
	rec := e.Extract(context.Background(), raw)

	require.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, 2566, rec.Fields["tax_year"]) // Gregorian year shifted to BE
	assert.Equal(t, 1234567.89, rec.Fields["assessed_income"])
	assert.Equal(t, float64(50000), rec.Fields["tax_paid"])
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, 1, rec.Rows[0]["statement_type_id"])
	assert.Equal(t, float64(2000000), rec.Rows[0]["valuation_submitter"])
}
