package xlog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ntamas/netctrl/internal/xlog"
)

func TestPhasefGatedByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := xlog.New(xlog.Config{Verbosity: xlog.Silent, Output: &buf, Pretty: true})
	l.Phasef("phase one")
	assert.Empty(t, buf.String())
}

func TestPhasefEmitsAtPhaseVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := xlog.New(xlog.Config{Verbosity: xlog.Phase, Output: &buf, Pretty: true})
	l.Phasef("phase %d starting", 1)
	assert.Contains(t, buf.String(), "phase 1 starting")
}

func TestDetailfRequiresDetailVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := xlog.New(xlog.Config{Verbosity: xlog.Phase, Output: &buf, Pretty: true})
	l.Detailf("fine-grained note")
	assert.Empty(t, buf.String())

	l2 := xlog.New(xlog.Config{Verbosity: xlog.Detail, Output: &buf, Pretty: true})
	l2.Detailf("fine-grained note")
	assert.Contains(t, buf.String(), "fine-grained note")
}

func TestDiscardNeverEmits(t *testing.T) {
	l := xlog.Discard()
	assert.NotPanics(t, func() {
		l.Phasef("x")
		l.Detailf("y")
		l.Errorf("z")
	})
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *xlog.Logger
	assert.NotPanics(t, func() {
		l.Phasef("x")
		l.Detailf("y")
		l.Errorf("z")
	})
}
