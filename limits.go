//go:build !nsrb_nolimit

package nsrb

// limitsEnforced gates the capacity checks in the constructors. Build with
// the nsrb_nolimit tag to compile them out entirely.
const limitsEnforced = true
