package pprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pprint"
)

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"mapping":         {input: "a: 1\nb: [x, y]\n", want: `{"a": 1, "b": ["x", "y"]}`},
		"json order kept": {input: `{"z": 1, "a": true}`, want: `{"z": 1, "a": True}`},
		"null":            {input: "~\n", want: "null"},
		"float":           {input: "1.5\n", want: "1.5"},
		"big int":         {input: "18446744073709551615\n", want: "18446744073709551615"},
		"timestamp":       {input: "2001-12-14\n", want: "2001-12-14"},
		"tagged record":   {input: "p: !Point {x: 1, y: 2}\n", want: `{"p": Point(x=1, y=2)}`},
		"shared alias":    {input: "a: &p !Point {x: 1}\nb: *p\n", want: `{"a": Point(x=1), "b": Point}`},
		"recursive alias": {input: "&a [1, *a]\n", want: "[1, *a]"},
		"tagged scalar":   {input: "!Color red\n", want: "red"},
		"set":             {input: "!!set {a, b}\n", want: `{"a", "b"}`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			docs, err := pprint.DecodeYAML(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, docs, 1)
			assert.Equal(t, tc.want, format(t, pprint.DefaultConfig(), docs[0]))
		})
	}
}

func TestDecodeYAMLDocuments(t *testing.T) {
	t.Parallel()
	docs, err := pprint.DecodeYAML(strings.NewReader("--- 1\n--- 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []pprint.Value{pprint.Int(1), pprint.Int(2)}, docs)

	docs, err = pprint.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Parallel()
	_, err := pprint.DecodeYAML(strings.NewReader("a: [\n"))
	require.Error(t, err)

	docs, err := pprint.DecodeYAML(strings.NewReader("!P\n? [1]\n: 2\n"))
	require.NoError(t, err)
	_, err = pprint.Format(docs[0])
	assert.ErrorIs(t, err, pprint.ErrUnsupportedValue)
}
