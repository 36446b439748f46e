package desktop

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoot(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	var buf bytes.Buffer
	require.NoError(t, d.Boot(context.Background(), &buf, 0))

	assert.Equal(t, PhaseDesktop, d.Phase())
	assert.Equal(t, strings.Join(BootLines, "\n")+"\n", buf.String())

	buf.Reset()
	require.NoError(t, d.Boot(context.Background(), &buf, 0))
	assert.Empty(t, buf.String())
}

func TestBoot_SkippedByContext(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, d.Boot(ctx, &buf, BootLineDelay))

	assert.Equal(t, PhaseDesktop, d.Phase())
	assert.Equal(t, BootLines[0]+"\n", buf.String())
}
