//go:build linux

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesktopEntryQuotesPathWithSpaces(t *testing.T) {
	entry := desktopEntry("AquaRemind", "/opt/Aqua Remind/aquaremind")

	assert.Contains(t, entry, "[Desktop Entry]\n")
	assert.Contains(t, entry, "Name=AquaRemind\n")
	assert.Contains(t, entry, `Exec="/opt/Aqua Remind/aquaremind"`)
	assert.Contains(t, entry, "X-GNOME-Autostart-enabled=true")
}

func TestDesktopEntryPlainPath(t *testing.T) {
	entry := desktopEntry("AquaRemind", "/usr/bin/aquaremind")

	assert.Contains(t, entry, "Exec=/usr/bin/aquaremind\n")
}
