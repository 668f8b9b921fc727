package home_test

import (
	"encoding/json"
	"testing"

	"github.com/LeHPhuc/GymApp/internal/home"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionStatusValues(t *testing.T) {
	assert.Equal(t, "ready", home.SectionStatusReady)
	assert.Equal(t, "empty", home.SectionStatusEmpty)
	assert.Equal(t, "error", home.SectionStatusError)
}

func TestSectionSerialization(t *testing.T) {
	errSection := home.Section{
		Status: home.SectionStatusError,
		Error: &home.SectionError{
			Kind:    home.ErrKindFetchFailed,
			Message: "Không thể tải dữ liệu gói tập",
		},
	}
	errJson, err := json.Marshal(errSection)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"status":"error","error":{"kind":"fetch_failed","message":"Không thể tải dữ liệu gói tập"}}`,
		string(errJson),
	)

	emptyJson, err := json.Marshal(home.Section{Status: home.SectionStatusEmpty})
	require.NoError(t, err)
	// empty carries neither data nor error
	assert.JSONEq(t, `{"status":"empty"}`, string(emptyJson))
}
