//go:build linux

package main

import "github.com/acamera-isp/ispreg-go/pkg/regspace"

func openDevMem(cfg *Config) (*backend, error) {
	dm, err := regspace.OpenDevMem(cfg.DevMem, cfg.Base, cfg.Size)
	if err != nil {
		return nil, err
	}
	return &backend{space: dm, closer: dm}, nil
}
