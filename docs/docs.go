// Package docs holds the swagger document generated from the route table at
// start up and registers it with swag.
package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-openapi/spec"
	"github.com/pkg/errors"
	"github.com/swaggo/swag"
)

type document struct {
	mu   sync.RWMutex
	body string
}

func (d *document) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.body
}

func (d *document) set(body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body = body
}

var doc = &document{body: "{}"}

func init() {
	swag.Register(swag.Name, doc)
}

// Publish makes swagger the registered document. When filePath is not empty
// the document is also written there for the swagger UI.
func Publish(swagger *spec.Swagger, filePath string) error {
	body, err := json.MarshalIndent(swagger, "", "    ")
	if err != nil {
		return errors.Wrap(err, "unable to marshal swagger document")
	}
	doc.set(string(body))
	if filePath == "" {
		return nil
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return errors.Wrap(err, "unable to create swagger directory")
	}
	if err = os.WriteFile(filePath, body, 0o644); err != nil {
		return errors.Wrap(err, "unable to write swagger document")
	}
	return nil
}
