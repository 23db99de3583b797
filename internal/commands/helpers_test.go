package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"realestatedb/internal/validate"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = parseID("forty-two")
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
}

func TestParsePairs(t *testing.T) {
	fields, err := parsePairs("set", []string{"city=Austin", "year_built=2012", "phone="})
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"city": "Austin", "year_built": "2012", "phone": ""}, fields)

	_, err = parsePairs("set", []string{"no-equals-sign"})
	assert.Error(t, err)
	_, err = parsePairs("set", []string{"=value"})
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	cmd.SetIn(strings.NewReader("yes\n"))
	assert.True(t, confirm(cmd, "Delete?"))

	cmd.SetIn(strings.NewReader("no\n"))
	assert.False(t, confirm(cmd, "Delete?"))

	cmd.SetIn(strings.NewReader("YES\n"))
	assert.True(t, confirm(cmd, "Delete?"))
}
