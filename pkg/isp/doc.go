// Package isp holds the descriptor tables of the ISP register map.
//
// The *_gen.go files are generated from docs/regmap by isp-reggen; edit the
// YAML, not the Go. Every field and table is a static descriptor used with
// the generic accessors:
//
//	r := regspace.NewRegion(space, ispBase, isp.WindowSize)
//	field.Write(r, isp.ISPTopActiveWidth, 1440)
//	w := field.Read(r, isp.ISPTopActiveWidth)
package isp

//go:generate go run ../../cmd/isp-reggen -regmap ../../docs/regmap -output .
