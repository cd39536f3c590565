//go:build regdebug

package field

import (
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/stretchr/testify/assert"
)

func TestDebugPanicsOnTruncation(t *testing.T) {
	r := regspace.NewRegion(regspace.NewMemory(), 0, 0x100)
	d := &Descriptor{Name: "sel", Width: 2}

	assert.Panics(t, func() { Write(r, d, 4) })
	assert.NotPanics(t, func() { Write(r, d, 3) })
}
