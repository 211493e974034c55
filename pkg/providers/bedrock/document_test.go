package bedrock

import (
	"math"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "null", value: nil},
		{name: "true", value: true},
		{name: "false", value: false},
		{name: "string", value: "hello"},
		{name: "empty string", value: ""},
		{name: "positive integer", value: int64(42)},
		{name: "negative integer", value: int64(-7)},
		{name: "max int64", value: int64(math.MaxInt64)},
		{name: "min int64", value: int64(math.MinInt64)},
		{name: "large unsigned", value: uint64(math.MaxUint64)},
		{name: "float", value: 3.25},
		{name: "negative float", value: -0.5},
		{name: "array", value: []any{int64(1), "two", 3.5, nil, true}},
		{name: "empty array", value: []any{}},
		{
			name: "object",
			value: map[string]any{
				"text":  "hello",
				"count": int64(3),
				"ratio": 0.75,
				"flag":  false,
			},
		},
		{
			name: "nested",
			value: map[string]any{
				"outer": map[string]any{
					"items": []any{map[string]any{"id": int64(1)}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ToDocument(tt.value)
			got, err := FromDocument(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

// Integral floats normalize to their integer representation, so the
// round-trip keeps the value while switching the numeric subtype
func TestDocumentRoundTrip_IntegralFloat(t *testing.T) {
	doc := ToDocument(float64(5))
	got, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestFromDocument_Nil(t *testing.T) {
	got, err := FromDocument(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExtractStringField(t *testing.T) {
	tests := []struct {
		name   string
		doc    document.Interface
		field  string
		want   string
		wantOk bool
	}{
		{
			name:   "string field present",
			doc:    ToDocument(map[string]any{"transcription": "hello"}),
			field:  "transcription",
			want:   "hello",
			wantOk: true,
		},
		{
			name:   "field absent",
			doc:    ToDocument(map[string]any{"other": "value"}),
			field:  "transcription",
			wantOk: false,
		},
		{
			name:   "field is not a string",
			doc:    ToDocument(map[string]any{"transcription": int64(7)}),
			field:  "transcription",
			wantOk: false,
		},
		{
			name:   "document is a bare string",
			doc:    ToDocument("transcription"),
			field:  "transcription",
			wantOk: false,
		},
		{
			name:   "document is an array",
			doc:    ToDocument([]any{"transcription"}),
			field:  "transcription",
			wantOk: false,
		},
		{
			name:   "nil document",
			doc:    nil,
			field:  "transcription",
			wantOk: false,
		},
		{
			name:   "empty object",
			doc:    ToDocument(map[string]any{}),
			field:  "transcription",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractStringField(tt.doc, tt.field)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
