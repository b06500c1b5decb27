package exporters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

func TestRender_Success(t *testing.T) {
	result := Render(domain.FormatTXT, func() (string, error) {
		return "body", nil
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Successfully exported to TXT", result.Message)
	assert.Equal(t, "body", result.Content)
}

func TestRender_Error(t *testing.T) {
	result := Render(domain.FormatFB2, func() (string, error) {
		return "", errors.New("malformed options")
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to FB2: malformed options", result.Message)
	assert.Empty(t, result.Content)
}

func TestRender_RecoversPanic(t *testing.T) {
	result := Render(domain.FormatLaTeX, func() (string, error) {
		panic("nil chapter")
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to export to LaTeX: nil chapter", result.Message)
	assert.Empty(t, result.Content)
}
