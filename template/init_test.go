package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/fakegraph/internal/schema"
	"github.com/Rana718/fakegraph/internal/writer"
)

func TestConfigIsValidJSON(t *testing.T) {
	for _, format := range writer.Formats {
		t.Run(format, func(t *testing.T) {
			tmpl := NewProjectTemplate(format)

			var cfg map[string]any
			require.NoError(t, json.Unmarshal([]byte(tmpl.GetConfig()), &cfg))
			assert.Equal(t, format, cfg["format"])
			assert.Equal(t, tmpl.OutputPath(), cfg["output_path"])
			assert.Equal(t, format, writer.FormatFromPath(tmpl.OutputPath()))
		})
	}
}

func TestDatamodelParses(t *testing.T) {
	model, err := schema.Parse("datamodel.graphql", NewProjectTemplate("").GetDatamodel())
	require.NoError(t, err)

	require.Len(t, model.Types, 3)
	_, ok := model.FindEnum("Role")
	assert.True(t, ok)
	post, ok := model.FindType("Post")
	require.True(t, ok)
	assert.Len(t, post.Fields, 7)
}

func TestValidateFormat(t *testing.T) {
	assert.Equal(t, "sql", ValidateFormat("sql"))
	assert.Equal(t, "graphql", ValidateFormat("csv"))
	assert.Equal(t, "graphql", ValidateFormat(""))
}
