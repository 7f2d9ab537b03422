package core

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EPARSE, "line %d is broken", 3)
	assert.Equal(t, EPARSE, Code(err))
	assert.Equal(t, "line 3 is broken", UserMessage(err))
	wrapped := fmt.Errorf("converting: %w", err)
	assert.Equal(t, EPARSE, Code(wrapped))
	assert.Equal(t, "line 3 is broken", UserMessage(wrapped))
}

func TestWrapError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	cause := errors.New("disk full")
	err := WrapError(cause, EIO, "cannot write %s", "a.png")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "[125] cannot write a.png: disk full", err.Error())
	assert.Equal(t, EMISSING, Code(ErrorWithCode(nil, EMISSING)))
	assert.Equal(t, "not found", UserMessage(ErrorWithCode(nil, EMISSING)))
}

func TestUserError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	var buf bytes.Buffer
	UserError(&buf, Error(EMISSING, "font not found: ipag"))
	assert.Equal(t, "[122] font not found: ipag\n", buf.String())
	buf.Reset()
	UserError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
