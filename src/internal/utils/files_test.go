package utils

import (
	"errors"
	"testing"
)

type closer struct {
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseOrWarn(t *testing.T) {
	ok := &closer{}
	CloseOrWarn(ok)
	if !ok.closed {
		t.Errorf("Expected Close to be called")
	}

	failing := &closer{err: errors.New("busy")}
	CloseOrWarn(failing)
	if !failing.closed {
		t.Errorf("Expected Close to be called even when it fails")
	}
}
