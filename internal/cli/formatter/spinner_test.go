package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_DrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Rendering report...")
	s.interval = time.Millisecond
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Rendering report...")
	assert.Contains(t, out, "\r\033[K")
}

func TestSpinner_StopTwice(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "x")
	stop()
	assert.NotPanics(t, stop)
}
