// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.WarnLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	loggerFromContext(ctx).Info("hidden")
	loggerFromContext(ctx).Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "citegraph")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"ID", "MEMBERS"}, [][]string{{"0", "a,b"}, {"10", "c"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4, "header, rule and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[0], "MEMBERS")
	assert.Contains(t, lines[1], "─")
	assert.NotContains(t, lines[1], "│", "no column borders")
	assert.True(t, strings.HasPrefix(lines[2], "0 "))
	assert.Contains(t, lines[2], "a,b")
	assert.True(t, strings.HasPrefix(lines[3], "10"))
	assert.Equal(t, strings.Index(lines[0], "MEMBERS"), strings.Index(lines[2], "a,b"), "columns line up")
}
