package sheet

import (
	"encoding/json"

	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// Encode serializes the sheet in the persisted document format
func Encode(s *CharacterSheet) ([]byte, error) {
	if s == nil {
		return nil, apperr.InvalidArgument("sheet cannot be nil")
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to encode sheet")
	}
	return data, nil
}

// Decode parses a persisted document and rejects sheets that break an invariant
func Decode(data []byte) (*CharacterSheet, error) {
	var s CharacterSheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeDecode, "failed to decode sheet")
	}

	s.normalize()

	if err := s.Validate(); err != nil {
		return nil, apperr.Wrap(err, "decoded sheet is invalid")
	}

	return &s, nil
}
