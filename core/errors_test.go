package core

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfNil(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(os.ErrNotExist, EMISSING, "cannot open %s", "x.md")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "cannot open x.md", UserMessage(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCodeSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", Error(EIO, "write failed"))
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "write failed", UserMessage(err))
}

func TestPlainErrorIsInternal(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "internal error", UserMessage(err))
}

func TestWrapNil(t *testing.T) {
	err := WrapError(nil, EINVALID, "bad marker %q", "+")
	assert.Equal(t, EINVALID, Code(err))
	assert.Contains(t, err.Error(), "invalid")
}
