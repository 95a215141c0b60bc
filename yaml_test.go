package fmtstream_test

import (
	"testing"

	"github.com/bjaus/fmtstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type yamlOuter struct {
	Name  string            `yaml:"name"`
	Inner map[string]string `yaml:"inner"`
}

type yamlIndented struct {
	yamlOuter `yaml:",inline"`
}

func (yamlIndented) Indent() string { return "  " }

func TestEncodeYAML(t *testing.T) {
	t.Parallel()
	m := fmtstream.NewMemoryStream(4)
	err := fmtstream.EncodeYAML(m.Stream, yamlOuter{Name: "x", Inner: map[string]string{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, "name: x\ninner:\n    k: v\n", m.String())
}

func TestEncodeYAMLIndented(t *testing.T) {
	t.Parallel()
	m := fmtstream.NewMemoryStream(4)
	v := yamlIndented{yamlOuter{Name: "x", Inner: map[string]string{"k": "v"}}}
	require.NoError(t, fmtstream.EncodeYAML(m.Stream, v))
	assert.Equal(t, "name: x\ninner:\n  k: v\n", m.String())
}

func TestEncodeYAMLAfterText(t *testing.T) {
	t.Parallel()
	m := fmtstream.NewMemoryStream(16)
	m.Put(fmtstream.Text("---\n"))
	require.NoError(t, fmtstream.EncodeYAML(m.Stream, []string{"a", "b"}))
	assert.Equal(t, "---\n- a\n- b\n", m.String())
}
