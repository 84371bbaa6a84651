package dto

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
)

// FieldBody is the validation field used for errors about the body as a whole.
const FieldBody = "body"

// Schema names an embedded JSON Schema that request bodies are checked against.
type Schema string

// Request body schemas.
const (
	SchemaCreateList Schema = "create_list.json"
	SchemaUpdateList Schema = "update_list.json"
	SchemaCreateItem Schema = "create_item.json"
	SchemaUpdateItem Schema = "update_item.json"
)

const schemaBaseURL = "https://todo-lists-api.local/schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

var schemas = mustCompileSchemas()

func mustCompileSchemas() map[Schema]*jsonschema.Schema {
	names := []Schema{SchemaCreateList, SchemaUpdateList, SchemaCreateItem, SchemaUpdateItem}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, name := range names {
		raw, err := schemaFS.ReadFile("schemas/" + string(name))
		if err != nil {
			panic(fmt.Sprintf("reading schema %s: %v", name, err))
		}
		if err := compiler.AddResource(schemaBaseURL+string(name), bytes.NewReader(raw)); err != nil {
			panic(fmt.Sprintf("adding schema %s: %v", name, err))
		}
	}

	compiled := make(map[Schema]*jsonschema.Schema, len(names))
	for _, name := range names {
		s, err := compiler.Compile(schemaBaseURL + string(name))
		if err != nil {
			panic(fmt.Sprintf("compiling schema %s: %v", name, err))
		}
		compiled[name] = s
	}
	return compiled
}

// Decode reads a JSON request body, validates it against schema and
// unmarshals it into dst. Every failure is a *domain.ValidationError: field
// errors are keyed by property name, problems with the document as a whole
// by FieldBody.
func Decode(r io.Reader, schema Schema, dst any) error {
	compiled, ok := schemas[schema]
	if !ok {
		return fmt.Errorf("unknown request schema %q", schema)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return bodyError("too large")
		}
		return fmt.Errorf("reading request body: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return bodyError("invalid JSON")
	}

	if err := compiled.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("validating request body: %w", err)
		}
		fields := make(map[string]string)
		collectSchemaErrors(fields, ve)
		return &domain.ValidationError{Fields: fields}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return bodyError("does not match the expected shape")
	}
	return nil
}

func bodyError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{FieldBody: msg}}
}

// collectSchemaErrors flattens the schema error tree into field messages,
// keeping the first message reported for each field.
func collectSchemaErrors(fields map[string]string, err *jsonschema.ValidationError) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collectSchemaErrors(fields, cause)
		}
		return
	}

	if strings.HasSuffix(err.KeywordLocation, "/required") {
		if missing := missingProperties(err.Message); len(missing) > 0 {
			for _, name := range missing {
				setField(fields, joinPointer(err.InstanceLocation, name), domain.MsgRequired)
			}
			return
		}
	}

	setField(fields, pointerToField(err.InstanceLocation), err.Message)
}

func setField(fields map[string]string, field, msg string) {
	if _, exists := fields[field]; !exists {
		fields[field] = msg
	}
}

// missingProperties extracts property names from a "missing properties: 'a', 'b'" message.
func missingProperties(msg string) []string {
	list, ok := strings.CutPrefix(msg, "missing properties: ")
	if !ok {
		return nil
	}
	var names []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.Trim(strings.TrimSpace(part), `'"`); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func joinPointer(ptr, name string) string {
	if base := pointerToField(ptr); base != FieldBody {
		return base + "." + name
	}
	return name
}

// pointerToField converts a JSON pointer such as "/title" to a field name.
// The document root maps to FieldBody.
func pointerToField(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return FieldBody
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
