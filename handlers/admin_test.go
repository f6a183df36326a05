package handlers_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacy(t *testing.T) {
	env := setupTestApp(t)
	session := env.login(t)

	t.Run("Nothing to migrate", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/admin/migrate", nil, session)
		assert.Equal(t, http.StatusNotFound, resp.status)
		assert.Equal(t, "No legacy data to migrate", resp.body["error"])
	})

	t.Run("Partial batch", func(t *testing.T) {
		legacy := `[
			{"title":"Piso en Lleida","price":150000,"location":"Lleida","operationType":"venta","propertyType":"piso","features":["Ascensor"]},
			{"title":"Sin precio","price":0,"location":"Lleida","operationType":"venta","propertyType":"piso"},
			{"title":"Casa en Alpicat","price":280000,"location":"Alpicat","operationType":"venta","propertyType":"casa"}
		]`
		require.NoError(t, os.WriteFile(env.legacyPath, []byte(legacy), 0o644))

		resp := env.do(t, http.MethodPost, "/api/admin/migrate", nil, session)
		require.Equal(t, http.StatusOK, resp.status)

		result := resp.body["migration"].(map[string]interface{})
		assert.Equal(t, float64(3), result["total"])
		assert.Equal(t, float64(2), result["successful"])
		assert.Equal(t, float64(1), result["failed"])
		assert.Equal(t, true, result["cleared"])

		items := result["results"].([]interface{})
		failed := items[1].(map[string]interface{})
		assert.Equal(t, false, failed["success"])
		assert.Contains(t, failed["fields"], "price")
		assert.NotNil(t, failed["data"])

		_, err := os.Stat(env.legacyPath)
		assert.True(t, os.IsNotExist(err))

		resp = env.do(t, http.MethodGet, "/api/properties", nil)
		assert.Len(t, resp.body["properties"], 2)
	})
}
