package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestPublish(t *testing.T) {
	swagger := &spec.Swagger{SwaggerProps: spec.SwaggerProps{
		Swagger: "2.0",
		Info:    &spec.Info{InfoProps: spec.InfoProps{Title: "Employees", Version: "1.0"}},
	}}

	t.Run(`registered with swag`, func(t *testing.T) {
		require.Nil(t, Publish(swagger, ""))
		body, err := swag.ReadDoc()
		require.Nil(t, err)
		require.Contains(t, body, `"title": "Employees"`)
	})

	t.Run(`written to file`, func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "docs", "swagger.json")
		require.Nil(t, Publish(swagger, filePath))
		body, err := os.ReadFile(filePath)
		require.Nil(t, err)
		require.JSONEq(t, doc.ReadDoc(), string(body))
	})
}
