package types

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Validator is implemented by records that check their own invariants.
type Validator interface {
	Validate() error
}

var (
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// CheckShape decodes data into v (a non-nil pointer) and verifies that it
// conforms to v's shape:
//   - unknown fields are rejected;
//   - every field without omitempty, at any depth, must be present and,
//     unless it is a pointer or interface, not null;
//   - enum literals must belong to their value set;
//   - when v implements Validator, Validate must pass.
//
// Optional (omitempty) fields may be absent. All failures are returned as
// *ValidationError with dotted JSON paths.
func CheckShape(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("check shape: need a non-nil pointer, got %T", v)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewValidationError("body", err.Error())
	}

	var errs fieldErrors
	checkRequired(rv.Type().Elem(), raw, "", &errs)
	if len(errs) > 0 {
		return errs.err()
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return ve
		}
		return NewValidationError("body", err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return NewValidationError("body", "unexpected data after top-level value")
	}

	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}

func checkRequired(t reflect.Type, raw any, path string, errs *fieldErrors) {
	for t.Kind() == reflect.Pointer {
		if raw == nil {
			return
		}
		t = t.Elem()
	}
	if isLeaf(t) {
		checkText(t, raw, path, errs)
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return
		}
		checkStruct(t, obj, path, errs)
	case reflect.Slice, reflect.Array:
		arr, ok := raw.([]any)
		if !ok {
			return
		}
		for i, el := range arr {
			checkRequired(t.Elem(), el, indexPath(path, i), errs)
		}
	case reflect.Map:
		obj, ok := raw.(map[string]any)
		if !ok {
			return
		}
		for k, el := range obj {
			checkRequired(t.Elem(), el, joinPath(path, k), errs)
		}
	}
}

// checkText runs a string leaf through its UnmarshalText so that enum and
// timestamp failures are reported at their JSON path.
func checkText(t reflect.Type, raw any, path string, errs *fieldErrors) {
	s, ok := raw.(string)
	if !ok || !reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return
	}
	u := reflect.New(t).Interface().(encoding.TextUnmarshaler)
	err := u.UnmarshalText([]byte(s))
	if err == nil {
		return
	}
	if path == "" {
		path = "body"
	}
	msg := err.Error()
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		msg = ve.Errors[0].Message
	}
	errs.add(path, msg)
}

func checkStruct(t reflect.Type, obj map[string]any, path string, errs *fieldErrors) {
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, omitempty, skip := jsonField(f)
		if skip {
			continue
		}
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				checkStruct(ft, obj, path, errs)
				continue
			}
		}
		if name == "" {
			name = f.Name
		}

		fieldPath := joinPath(path, name)
		val, present := lookupKey(obj, name)
		switch {
		case !present && !omitempty:
			errs.add(fieldPath, "required")
		case present && val == nil && !omitempty && !nullable(f.Type):
			errs.add(fieldPath, "must not be null")
		case present:
			checkRequired(f.Type, val, fieldPath, errs)
		}
	}
}

// lookupKey finds name in obj, falling back to the case-insensitive match
// encoding/json itself accepts.
func lookupKey(obj map[string]any, name string) (any, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func jsonField(f reflect.StructField) (name string, omitempty, skip bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" || opt == "omitzero" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

func nullable(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface
}

// isLeaf reports whether t decodes itself or has no nested shape to check.
func isLeaf(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return true
	}
	pt := reflect.PointerTo(t)
	if pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType) {
		return true
	}
	// []byte is a base64 string on the wire.
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}
