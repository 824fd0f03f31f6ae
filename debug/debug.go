// Package debug provides tracing switched on by environment variables.
//
//	MANIP_DEBUG_APPLY  patch application in the manip package
//	MANIP_DEBUG_OP     operator invocations in mergeop
//	MANIP_DEBUG_RPC    requests served by the rpc package
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Apply bool
	Op    bool
	RPC   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("MANIP_DEBUG_APPLY")
	d.Op = boolEnv("MANIP_DEBUG_OP")
	d.RPC = boolEnv("MANIP_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Op() bool {
	return d.Op
}
func RPC() bool {
	return d.RPC
}

// Enable turns on all tracing.
func Enable() {
	d.Apply = true
	d.Op = true
	d.RPC = true
}
