// ABOUTME: Tests for decoding tunes response bodies
// ABOUTME: Covers ordering, empty arrays and each decode failure shape
package tune

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		expectErr bool
		expected  []string
	}{
		{
			name:     "Array of records keeps server order",
			body:     `[{"title":"The Morning Star"},{"title":"The Cooley's Reel"},{"title":"The Banshee"}]`,
			expected: []string{`{"title":"The Morning Star"}`, `{"title":"The Cooley's Reel"}`, `{"title":"The Banshee"}`},
		},
		{
			name:     "Empty array",
			body:     `[]`,
			expected: []string{},
		},
		{
			name:     "Leading whitespace and mixed element types",
			body:     "\n  [1, \"two\", null, [3]]",
			expected: []string{`1`, `"two"`, `null`, `[3]`},
		},
		{
			name:      "Bare word",
			body:      `not json`,
			expectErr: true,
		},
		{
			name:      "Truncated array",
			body:      `[{"title":"The Banshee"`,
			expectErr: true,
		},
		{
			name:      "Object instead of array",
			body:      `{"tunes":[]}`,
			expectErr: true,
		},
		{
			name:      "String instead of array",
			body:      `"not json"`,
			expectErr: true,
		},
		{
			name:      "Empty body",
			body:      ``,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tunes, err := Decode([]byte(tc.body))

			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, tunes)

				var decodeErr *DecodeError
				assert.True(t, errors.As(err, &decodeErr), "expected *DecodeError, got %T", err)
				assert.ErrorIs(t, err, ErrDecode)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, tunes)
			require.Len(t, tunes, len(tc.expected))
			for i, want := range tc.expected {
				assert.JSONEq(t, want, string(tunes[i]))
			}
		})
	}
}

func TestDecode_ObjectReportsType(t *testing.T) {
	_, err := Decode([]byte(`{"a":1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected array, got object")
}

func TestDecode_ElementsDoNotAliasBody(t *testing.T) {
	body := []byte(`[{"k":"D"}]`)
	tunes, err := Decode(body)
	require.NoError(t, err)

	copy(body, []byte(`[{"k":"G"}]`))

	key, ok := tunes[0].Key()
	require.True(t, ok)
	assert.Equal(t, "D", key)
}
