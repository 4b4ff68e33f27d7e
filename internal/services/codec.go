package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/surveykit/surveysha/pkg/surveysha"
)

// errIncompleteFingerprint marks a fingerprint file that parsed but lacks a digest.
var errIncompleteFingerprint = errors.New("fingerprint is missing a digest")

// EncodeFingerprint serializes a fingerprint compactly as {"survey":"…","score":"…"},
// without a trailing newline.
func EncodeFingerprint(fp surveysha.Fingerprint) ([]byte, error) {
	return json.Marshal(fp)
}

// DecodeFingerprint parses a stored fingerprint. Both digests must be present.
func DecodeFingerprint(data []byte) (surveysha.Fingerprint, error) {
	var fp surveysha.Fingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return surveysha.Fingerprint{}, fmt.Errorf("parse fingerprint: %w", err)
	}
	if fp.Survey == "" || fp.Score == "" {
		return fp, errIncompleteFingerprint
	}
	return fp, nil
}
