// Copyright (C) 2026 o8 protocol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package provenance

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/public_export.schema.json
var publicExportSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// PublicExportSchemaJSON returns the raw json schema of the public export document.
func PublicExportSchemaJSON() []byte {
	return publicExportSchemaJSON
}

func compilePublicExportSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(publicExportSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("could not parse public export schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(PublicExportSchema, doc); err != nil {
			schemaErr = fmt.Errorf("could not add public export schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(PublicExportSchema)
	})
	return compiledSchema, schemaErr
}

// ValidatePublicExport checks a serialized public export document against the embedded schema.
func ValidatePublicExport(document []byte) error {
	schema, err := compilePublicExportSchema()
	if err != nil {
		return err
	}

	var data any
	if err := json.Unmarshal(document, &data); err != nil {
		return fmt.Errorf("could not parse export document: %w", err)
	}
	return schema.Validate(data)
}
