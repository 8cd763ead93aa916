package timer

import (
	"reflect"
	"runtime"
	"strings"
)

// Wrapper holds a resolved tag and produces wrapped callables that measure
// every invocation. Obtain one with Wrap.
type Wrapper struct {
	tag string
	reg *Registry
}

// Wrap is the first stage of the wrapping combinator: it fixes the tag (or,
// when tag is empty, defers to the wrapped function's qualified name) and
// returns a Wrapper whose methods perform the second stage. The returned
// callables have the same signature and failure behavior as the originals;
// every invocation is measured exactly once, panics included.
func Wrap(tag string) Wrapper {
	return Wrapper{tag: tag, reg: std}
}

// Wrap is like the package-level Wrap but reports into this registry.
func (r *Registry) Wrap(tag string) Wrapper {
	return Wrapper{tag: tag, reg: r}
}

// Func wraps a no-result function.
func (w Wrapper) Func(fn func()) func() {
	tag := w.resolve(fn)
	return func() {
		defer w.reg.Timer(tag).Stop()
		fn()
	}
}

// FuncE wraps a function returning an error. The error passes through
// unchanged; the measurement is reported either way.
func (w Wrapper) FuncE(fn func() error) func() error {
	tag := w.resolve(fn)
	return func() error {
		defer w.reg.Timer(tag).Stop()
		return fn()
	}
}

func (w Wrapper) resolve(fn any) string {
	if w.tag != "" {
		return w.tag
	}
	return funcTag(fn)
}

// Wrap0 fuses both combinator stages for a niladic function with a result.
// Methods cannot carry type parameters, so the generic shapes live at
// package level; an empty tag derives from the function's qualified name,
// resolved once at wrap time.
func Wrap0[R any](tag string, fn func() R) func() R {
	if tag == "" {
		tag = funcTag(fn)
	}
	return func() R {
		defer std.Timer(tag).Stop()
		return fn()
	}
}

// Wrap1 fuses both combinator stages for a one-argument function.
func Wrap1[A, R any](tag string, fn func(A) R) func(A) R {
	if tag == "" {
		tag = funcTag(fn)
	}
	return func(a A) R {
		defer std.Timer(tag).Stop()
		return fn(a)
	}
}

// Wrap2 fuses both combinator stages for a two-argument function.
func Wrap2[A, B, R any](tag string, fn func(A, B) R) func(A, B) R {
	if tag == "" {
		tag = funcTag(fn)
	}
	return func(a A, b B) R {
		defer std.Timer(tag).Stop()
		return fn(a, b)
	}
}

// funcTag derives the aggregation tag from a function value's runtime name.
// runtime gives the import-path-qualified symbol, e.g.
// "github.com/x/y/internal/demo.(*Thing).DoStuff-fm"; the tag keeps only the
// receiver-qualified short form, "Thing.DoStuff". A free function "a" in any
// package yields "a".
func funcTag(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "func"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "func"
	}

	name := f.Name()
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// Strip the package name, the first dot-separated component.
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")
	if name == "" {
		return "func"
	}
	return name
}
