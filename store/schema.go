package store

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var taskSchemaJSON []byte

const taskSchemaURL = "todo://tasks.schema.json"

var (
	taskSchema     *jsonschema.Schema
	taskSchemaErr  error
	taskSchemaOnce sync.Once
)

func compiledTaskSchema() (*jsonschema.Schema, error) {
	taskSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(taskSchemaURL, bytes.NewReader(taskSchemaJSON)); err != nil {
			taskSchemaErr = fmt.Errorf("add task schema: %w", err)
			return
		}
		taskSchema, taskSchemaErr = compiler.Compile(taskSchemaURL)
		if taskSchemaErr != nil {
			taskSchemaErr = fmt.Errorf("compile task schema: %w", taskSchemaErr)
		}
	})
	return taskSchema, taskSchemaErr
}

// validateDocument checks a generically decoded task document against the task schema.
// doc must hold JSON-compatible values (maps, slices, strings, bools, numbers).
func validateDocument(file string, doc interface{}) error {
	schema, err := compiledTaskSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return toSchemaError(file, err)
	}
	return nil
}

// toSchemaError converts a jsonschema ValidationError into a SchemaError
// describing the first leaf failure.
func toSchemaError(file string, err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{File: file, Message: err.Error()}
	}

	var result *SchemaError
	collectSchemaErrors(file, ve, &result)
	if result != nil {
		return result
	}
	return &SchemaError{File: file, Message: ve.Message}
}

func collectSchemaErrors(file string, err *jsonschema.ValidationError, result **SchemaError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*result = &SchemaError{
			File:    file,
			Path:    err.InstanceLocation,
			Message: err.Message,
		}
		return
	}

	for _, cause := range err.Causes {
		if *result == nil {
			collectSchemaErrors(file, cause, result)
		}
	}
}
