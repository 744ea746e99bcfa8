package scalaps

import (
	"fmt"
	"reflect"
	"strings"
)

// A projection is the polymorphic "function-like" argument accepted by
// [Resolve]: a unary function, a field-name string, or an integer index.
// Resolution happens once, at the call boundary; combinators themselves only
// ever see the resolved func(T) U.

// Resolve turns a projection value into a typed unary getter.
//
//   - A func(T) U is returned unchanged. Any other function shape is wrapped
//     through reflection and called per element.
//   - A string becomes a field getter: a dot-separated path walked through
//     struct fields and string-keyed maps (see [Field]).
//   - An int becomes a positional getter over slices, arrays, and struct
//     fields, with negative indices counting from the end (see [At]).
//
// Any other value fails with [ErrUnsupportedProjection] naming its type.
//
//	get, err := scalaps.Resolve[Post, string]("Subreddit")
//	get, err := scalaps.Resolve[[]int, int](-1)
func Resolve[T, U any](p any) (func(T) U, error) {
	switch v := p.(type) {
	case func(T) U:
		return v, nil
	case string:
		return Field[T, U](v), nil
	case int:
		return At[T, U](v), nil
	}
	if rv := reflect.ValueOf(p); rv.Kind() == reflect.Func {
		return func(el T) U {
			out := rv.Call([]reflect.Value{reflect.ValueOf(el)})
			return out[0].Interface().(U)
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedProjection, p)
}

// Field returns a getter that reads the named field from each element.
// Path may be a dot-separated chain of struct field names and string map
// keys, e.g. "Author.Name" or "user.address.city" over nested
// map[string]any data.
//
// A missing field or key panics with a descriptive message at element-access
// time, mirroring the host semantics of attribute access.
func Field[T, U any](path string) func(T) U {
	segments := strings.Split(path, ".")
	return func(el T) U {
		v := reflect.ValueOf(el)
		for _, seg := range segments {
			v = fieldOf(v, seg)
		}
		return v.Interface().(U)
	}
}

// At returns a getter that reads the element at index from each element.
// Supported shapes: slices and arrays (negative index counts from the end),
// and struct fields by declaration order, which covers [Pair] (0 → First,
// 1 → Second). Out-of-range indices panic, per host sequence semantics.
func At[T, U any](index int) func(T) U {
	return func(el T) U {
		v := indirect(reflect.ValueOf(el))
		n := 0
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			n = v.Len()
		case reflect.Struct:
			n = v.NumField()
		default:
			panic(fmt.Sprintf("scalaps: cannot index a %s", v.Kind()))
		}
		i := index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			panic(fmt.Sprintf("scalaps: index %d out of range for %s of length %d", index, v.Kind(), n))
		}
		if v.Kind() == reflect.Struct {
			return v.Field(i).Interface().(U)
		}
		return v.Index(i).Interface().(U)
	}
}

func fieldOf(v reflect.Value, name string) reflect.Value {
	v = indirect(v)
	if !v.IsValid() {
		panic(fmt.Sprintf("scalaps: no field %q on nil", name))
	}
	switch v.Kind() {
	case reflect.Struct:
		if f := v.FieldByName(name); f.IsValid() {
			return f
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			key := reflect.ValueOf(name).Convert(v.Type().Key())
			if mv := v.MapIndex(key); mv.IsValid() {
				return mv
			}
		}
	}
	panic(fmt.Sprintf("scalaps: no field %q on %s", name, v.Type()))
}

// indirect unwraps pointers and interfaces down to the concrete value.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			break
		}
		v = v.Elem()
	}
	return v
}
