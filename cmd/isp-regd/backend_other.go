//go:build !linux

package main

import "errors"

func openDevMem(*Config) (*backend, error) {
	return nil, errors.New("devmem backend is only available on linux")
}
