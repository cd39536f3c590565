//go:build !regdebug

package field

// Debug is true when built with the regdebug tag. Accessors then panic on
// values that would be truncated and on LUT indices past the table.
const Debug = false
