package desktop

import (
	"context"
	"fmt"
	"io"
	"time"
)

// BootLines is the BIOS-style text shown while a session boots.
var BootLines = []string{
	"TahaOS v1.0.0 - BIOS Setup Utility",
	"Copyright (C) 2026 Taha. All Rights Reserved.",
	"",
	"Checking system memory... 8192 MB OK",
	"Detecting primary drive... SSD 512 GB OK",
	"Loading kernel modules...",
	"Initializing network interfaces... OK",
	"Mounting portfolio filesystem...",
	"Starting TahaOS services...",
	"",
	"System ready. Launching desktop environment...",
}

// BootLineDelay is the pause between boot lines.
const BootLineDelay = 180 * time.Millisecond

// Boot writes the boot sequence to w, pausing delay between lines, and
// then finishes booting. A session already on the desktop writes nothing.
// If ctx ends early the sequence is skipped and the session still reaches
// the desktop.
func (d *Desktop) Boot(ctx context.Context, w io.Writer, delay time.Duration) error {
	if d.Phase() == PhaseDesktop {
		return nil
	}
	defer d.FinishBoot()

	for _, line := range BootLines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
	return nil
}
