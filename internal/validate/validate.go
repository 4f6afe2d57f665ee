package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed extraction.schema.json
var schemaJSON string

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("extraction.schema.json", strings.NewReader(schemaJSON)); err != nil {
		loadErr = err
		return
	}
	schema, loadErr = c.Compile("extraction.schema.json")
}

// Extraction checks a raw structured-extraction response against the
// embedded schema before it is decoded.
func Extraction(raw []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return schema.Validate(v)
}
