package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsFrom_ReportsWireNames(t *testing.T) {
	var req GenerateSEORequest
	err := bindJSON(t, `{"content":"too short","tenantId":"acme"}`, &req)
	require.Error(t, err)

	fields := FieldErrorsFrom(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"content", "currentTitle"}, names)
}

func TestFieldErrorsFrom_MalformedBody(t *testing.T) {
	var req UpsertSEORequest
	err := bindJSON(t, `{"meta_title": `, &req)
	require.Error(t, err)

	fields := FieldErrorsFrom(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
	assert.Equal(t, "Invalid request body", fields[0].Message)
}

func TestFieldErrorsFrom_MessagesNameTheConstraint(t *testing.T) {
	var req UpsertSEORequest
	err := bindJSON(t, `{}`, &req)
	require.Error(t, err)

	fields := FieldErrorsFrom(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "meta_title", fields[0].Field)
	assert.Contains(t, fields[0].Message, "required")
}
