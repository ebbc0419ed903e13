package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	schemaSources := map[string][]byte{
		"rank_model.schema.json": RankModel(),
		"applicant.schema.json":  Applicant(),
	}

	for name, data := range schemaSources {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, data)

			var v interface{}
			err := json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema should be valid JSON: %s", name)
		})
	}
}

func TestEmbeddedSchemas_ValidJSONSchemaShape(t *testing.T) {
	schemaSources := map[string][]byte{
		"rank_model.schema.json": RankModel(),
		"applicant.schema.json":  Applicant(),
	}

	for name, data := range schemaSources {
		t.Run(name, func(t *testing.T) {
			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare $schema, type, and properties")
		})
	}
}

func TestRankModelSchema_DeclaresWeightsRequired(t *testing.T) {
	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(RankModel(), &schemaObj))

	required, ok := schemaObj["required"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, required, "weights")
}

func TestAccessors_ReturnCopies(t *testing.T) {
	first := RankModel()
	first[0] = '!'

	second := RankModel()
	assert.Equal(t, byte('{'), second[0])
}
