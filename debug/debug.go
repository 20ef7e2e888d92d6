package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Codec  bool
	Encode bool
	Unify  bool
	Pool   bool
	Check  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Codec = boolEnv("MMP_DEBUG_CODEC")
	d.Encode = boolEnv("MMP_DEBUG_ENCODE")
	d.Unify = boolEnv("MMP_DEBUG_UNIFY")
	d.Pool = boolEnv("MMP_DEBUG_POOL")
	d.Check = boolEnv("MMP_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Codec() bool {
	return d.Codec
}
func Encode() bool {
	return d.Encode
}
func Unify() bool {
	return d.Unify
}
func Pool() bool {
	return d.Pool
}
func Check() bool {
	return d.Check
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
