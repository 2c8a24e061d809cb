package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/newtop/marmoleria-api/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/api/catalog", "/api/auth/login", "/api/quotes/{id}/export/pdf", "/api/inventory/view"} {
		assert.Contains(t, paths, p)
	}
}
