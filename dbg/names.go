// Readable throwaway names for otherwise anonymous values. Hand-built test
// cases often have no Name; when one shows up in a log line or a rendered
// image, a pointer address is useless to a human. Name gives the same value
// the same random petname for the life of the process.
package dbg

import (
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order, so make them nondeterministic:
	// the same name must never be mistaken for the same value across runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj within this process. The memo
// is never pruned, which is fine for debugging and test diagnostics.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	if name, ok := memo[obj]; ok {
		return name
	}
	name := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = name
	return name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
