package catalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema returns the JSON schema of the catalog document, indented.
func Schema() (data []byte, err error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/silenciopz/hwbench/catalog.schema.json"
	schema.Title = "hwbench catalog"
	schema.Description = "CPU, GPU and game records consumed by the hwbench scoring engine"

	data, err = json.MarshalIndent(schema, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal catalog schema")
		return data, err
	}

	return data, err
}
