package datamodel

import "reflect"

// Bundle produces a set of capabilities bound to self. Binding a Bundle
// evaluates it against the target, so methods that refer to self see the
// model they were installed on.
type Bundle func(self *Model) Model

// Bind copies the function slots of source onto target.
//
// source may be a Bundle, a Model or *Model, or any provider value, whose
// method set is read with Capture. A nil or list-shaped (slice or array)
// source is ignored. A slot already populated on target is kept unless
// overwrite is set, which makes repeated calls with the same source no-ops.
//
// If target has no Install slot, Bind installs itself there first, so later
// stages can extend the model through target.Install.
func Bind(target *Model, source any, overwrite bool) {
	if target == nil || ignoredSource(source) {
		return
	}
	if target.Install == nil {
		target.Install = func(source any, overwrite bool) {
			Bind(target, source, overwrite)
		}
	}
	src := sourceModel(target, source)
	if src == nil {
		return
	}

	dst := reflect.ValueOf(target).Elem()
	from := reflect.ValueOf(src).Elem()
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Func || f.Name == "Install" {
			continue
		}
		fn := from.Field(i)
		if fn.IsNil() {
			continue
		}
		if !overwrite && !dst.Field(i).IsNil() {
			continue
		}
		dst.Field(i).Set(fn)
	}
}

func ignoredSource(source any) bool {
	if source == nil {
		return true
	}
	switch reflect.ValueOf(source).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func sourceModel(target *Model, source any) *Model {
	switch s := source.(type) {
	case Bundle:
		if s == nil {
			return nil
		}
		m := s(target)
		return &m
	case func(*Model) Model:
		if s == nil {
			return nil
		}
		m := s(target)
		return &m
	case *Model:
		return s
	case Model:
		return &s
	default:
		m := Capture(source)
		return &m
	}
}
