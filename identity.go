package pprint

import (
	"reflect"
	"strconv"
)

// Identity distinguishes instances, not values. Two equal records at
// different addresses have different identities; the same record reached
// twice has the same identity.
type Identity uintptr

// String returns the identity as lowercase hex.
func (id Identity) String() string {
	return strconv.FormatUint(uint64(id), 16)
}

// IdentityOf returns the identity of x. Records implementing [Identifiable]
// supply their own; otherwise pointers, maps, slices, channels and funcs are
// identified by address. ok is false for values that carry no identity.
func IdentityOf(x any) (id Identity, ok bool) {
	switch i := x.(type) {
	case Identifiable:
		return i.Identity(), true
	case maybeIdentifiable:
		return i.identity()
	}
	if x == nil {
		return 0, false
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return 0, false
		}
		return Identity(v.Pointer()), true
	case reflect.Slice:
		if v.Len() == 0 {
			return 0, false
		}
		return Identity(v.Pointer()), true
	default:
		return 0, false
	}
}

// seenKey pairs an identity with its type name, so a struct and its first
// field, which share an address, are told apart.
type seenKey struct {
	typ string
	id  Identity
}

// maybeIdentifiable is implemented by adapters whose records may or may not
// have an address behind them.
type maybeIdentifiable interface {
	identity() (Identity, bool)
}

// tracker records the identities visited during one format call.
type tracker map[seenKey]struct{}

// note records id and reports whether it was unseen.
func (t tracker) note(typ string, id Identity) bool {
	k := seenKey{typ: typ, id: id}
	if _, seen := t[k]; seen {
		return false
	}
	t[k] = struct{}{}
	return true
}

func (t tracker) reset() {
	clear(t)
}
