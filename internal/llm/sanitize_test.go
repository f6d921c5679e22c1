package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/internal/common"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "clean json",
			in:   `{"fields":{"a":1},"confidence":0.9}`,
			want: `{"fields":{"a":1},"confidence":0.9}`,
		},
		{
			name: "surrounding whitespace",
			in:   "\n  {\"rows\":[]}  \n",
			want: `{"rows":[]}`,
		},
		{
			name: "json fence",
			in:   "Here is the result:\n```json\n{\"rows\":[{\"a\":1}]}\n```\nHope that helps!",
			want: `{"rows":[{"a":1}]}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"rows\":[]}\n```",
			want: `{"rows":[]}`,
		},
		{
			name: "loose object in prose",
			in:   `The extracted data is {"fields":{"x":"y"}} as requested.`,
			want: `{"fields":{"x":"y"}}`,
		},
		{
			name:    "no json at all",
			in:      "I cannot process this document.",
			wantErr: true,
		},
		{
			name:    "broken json everywhere",
			in:      "```json\n{\"rows\":[\n```",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsMalformed(err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"fields":{"first_name":"สมชาย"},"rows":[{"a":1}],"confidence":0.8}`))
	require.NoError(t, err)
	assert.Equal(t, "สมชาย", env.Fields["first_name"])
	assert.Len(t, env.Rows, 1)
	assert.Equal(t, 0.8, env.Confidence)

	_, err = DecodeEnvelope([]byte(`[1,2,3]`))
	require.Error(t, err)
	assert.True(t, common.IsMalformed(err))
}

func TestBuildSectionSchemaShapes(t *testing.T) {
	def, ok := SectionFor("relatives")
	require.True(t, ok)
	schema := BuildSectionSchema(def)

	require.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"rows":[{"relationship_id":1,"first_name":"ก"}],"confidence":0.5}`)))

	// rows are required for rows-only sections
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"confidence":0.5}`)))
	// unknown row columns are rejected
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"rows":[{"salary":100}]}`)))
	// confidence is bounded
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"rows":[],"confidence":1.5}`)))
}

func TestSectionTableComplete(t *testing.T) {
	assert.Len(t, Sections, 11)
	for _, def := range Sections {
		assert.NotEmpty(t, def.Name)
		if len(def.RowFields) > 0 {
			assert.NotEmpty(t, def.RowKey, "section %s has rows but no key", def.Name)
		}
		for _, fd := range def.RowFields {
			if fd.Kind == KindEnum {
				assert.NotEmpty(t, fd.Domain, "enum field %s.%s missing domain", def.Name, fd.Name)
				assert.Contains(t, def.Domains, fd.Domain, "section %s should carry domain %s", def.Name, fd.Domain)
			}
		}
	}
}
