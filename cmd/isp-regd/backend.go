package main

import (
	"fmt"
	"io"

	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// backend is a register space the daemon serves, plus its cleanup.
type backend struct {
	space  regspace.Space
	closer io.Closer
	memory *regspace.Memory // set for the simulator backend
}

func (b *backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// openBackend creates the configured register space. The simulator starts
// from the documented reset image, relocated to the configured base.
func openBackend(cfg *Config) (*backend, error) {
	switch cfg.Backend {
	case BackendMemory:
		mem := regspace.NewMemoryWithImage(relocate(isp.Default().ResetImage(), cfg.Base))
		return &backend{space: mem, memory: mem}, nil
	case BackendDevMem:
		return openDevMem(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func relocate(image map[uint32]uint32, base uint32) map[uint32]uint32 {
	out := make(map[uint32]uint32, len(image))
	for off, v := range image {
		out[base+off] = v
	}
	return out
}
