package pprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pprint"
)

func TestDecodeTOML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"document order": {
			input: "b = 1\na = \"x\"\n[t]\nz = true\ny = 2.5\n",
			want:  `{"b": 1, "a": "x", "t": {"z": True, "y": 2.5}}`,
		},
		"array": {
			input: "x = [1, 2]\n",
			want:  `{"x": [1, 2]}`,
		},
		"array of tables": {
			input: "[[p]]\nn = 1\n[[p]]\nn = 2\n",
			want:  `{"p": [{"n": 1}, {"n": 2}]}`,
		},
		"empty": {
			input: "",
			want:  "{}",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := pprint.DecodeTOML(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, format(t, pprint.DefaultConfig(), v))
		})
	}
}

func TestDecodeTOMLError(t *testing.T) {
	t.Parallel()
	_, err := pprint.DecodeTOML(strings.NewReader("a = \n"))
	assert.Error(t, err)
}
