package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveykit/surveysha/pkg/surveysha"
)

func TestEncodeFingerprint_CompactKeyOrder(t *testing.T) {
	data, err := EncodeFingerprint(surveysha.Fingerprint{Survey: "aaa", Score: "bbb"})
	require.NoError(t, err)
	assert.Equal(t, `{"survey":"aaa","score":"bbb"}`, string(data))
}

func TestDecodeFingerprint(t *testing.T) {
	fp, err := DecodeFingerprint([]byte(`{"score":"bbb","survey":"aaa"}`))
	require.NoError(t, err)
	assert.Equal(t, surveysha.Fingerprint{Survey: "aaa", Score: "bbb"}, fp)

	// Formatting of the stored file is irrelevant
	fp, err = DecodeFingerprint([]byte("{\n  \"survey\": \"aaa\",\n  \"score\": \"bbb\"\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, "aaa", fp.Survey)
}

func TestDecodeFingerprint_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "sha1:abc"},
		{"empty", ""},
		{"missing score", `{"survey":"aaa"}`},
		{"missing survey", `{"score":"bbb"}`},
		{"wrong type", `{"survey":1,"score":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFingerprint([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
