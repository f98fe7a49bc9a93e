package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

func TestGenerate_JSONSingleIndustry(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(&out, &errOut, generateFlags{industry: "waste", format: "json", seed: 7}))
	assert.Empty(t, errOut.String())

	var ds domain.IndustryDataset
	require.NoError(t, json.Unmarshal(out.Bytes(), &ds))
	assert.Equal(t, domain.IndustryWaste, ds.Industry)
	assert.Len(t, ds.Series, mockdata.SeriesLength)
	assert.Len(t, ds.KPIs, 4)
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, runGenerate(&a, &bytes.Buffer{}, generateFlags{format: "json", seed: 11}))
	require.NoError(t, runGenerate(&b, &bytes.Buffer{}, generateFlags{format: "json", seed: 11}))

	var ca, cb mockdata.Catalog
	require.NoError(t, json.Unmarshal(a.Bytes(), &ca))
	require.NoError(t, json.Unmarshal(b.Bytes(), &cb))
	if diff := cmp.Diff(ca, cb); diff != "" {
		t.Fatalf("catalogs differ (-a +b):\n%s", diff)
	}
	assert.Len(t, ca.Datasets, 3)
}

func TestGenerate_UnknownIndustryFallsBack(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(&out, &errOut, generateFlags{industry: "mining", format: "json", seed: 1}))
	assert.Contains(t, errOut.String(), `unknown industry "mining"`)

	var ds domain.IndustryDataset
	require.NoError(t, json.Unmarshal(out.Bytes(), &ds))
	assert.Equal(t, domain.IndustryRetail, ds.Industry)
}

func TestGenerate_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGenerate(&out, &bytes.Buffer{}, generateFlags{industry: "retail", format: "YAML", seed: 3}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "retail", doc["industry"])
	alerts, ok := doc["alerts"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, alerts)
	assert.Equal(t, "inventory", alerts[0].(map[string]any)["kind"])
}

func TestGenerate_BadFormat(t *testing.T) {
	err := runGenerate(&bytes.Buffer{}, &bytes.Buffer{}, generateFlags{format: "xml"})
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "generate"})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerate_WriteErrorSurfaces(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			err := runGenerate(failingWriter{}, &bytes.Buffer{}, generateFlags{industry: "retail", format: format, seed: 5})
			assert.Error(t, err)
		})
	}
}
