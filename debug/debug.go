package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/segmentio/encoding/json"
)

type debug struct {
	Decode   bool
	Encode   bool
	Registry bool
	Eval     bool
	Patch    bool
	Store    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("RTTI_DEBUG_DECODE")
	d.Encode = boolEnv("RTTI_DEBUG_ENCODE")
	d.Registry = boolEnv("RTTI_DEBUG_REGISTRY")
	d.Eval = boolEnv("RTTI_DEBUG_EVAL")
	d.Patch = boolEnv("RTTI_DEBUG_PATCH")
	d.Store = boolEnv("RTTI_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Registry() bool {
	return d.Registry
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Store() bool {
	return d.Store
}

// Logf writes a formatted line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

// LogAny writes v to stderr as a line of JSON, or with %v if it cannot
// be marshaled.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
