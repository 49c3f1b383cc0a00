//go:build nsrb_nolimit

package nsrb

const limitsEnforced = false
