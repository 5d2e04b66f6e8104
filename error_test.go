package huggingface_test

import (
	"errors"
	"testing"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("bad parameter", huggingface.ErrBadParameter.Error())
	assert.Equal("error code 99", huggingface.Err(99).Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)
	err := huggingface.ErrBadParameter.With("missing API key")
	assert.EqualError(err, "bad parameter: missing API key")
	assert.True(errors.Is(err, huggingface.ErrBadParameter))
	assert.False(errors.Is(err, huggingface.ErrNotFound))

	err = huggingface.ErrNotFound.Withf("column %q", "Stars")
	assert.EqualError(err, `not found: column "Stars"`)
	assert.ErrorIs(err, huggingface.ErrNotFound)
}
