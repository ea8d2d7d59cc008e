// util/validation_util.go

package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
)

// exactJSON decodes payloads with exact key matching.
var exactJSON = jsoniter.Config{
	CaseSensitive:         true,
	DisallowUnknownFields: true,
}.Froze()

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return jsonName(fld)
	})
	return &ValidationUtil{validate: v}
}

// DecodeStrict decodes raw into dst and validates the result. Keys of the
// top-level object must match a json field of dst exactly; unknown keys of
// nested objects are dropped. An empty body decodes as an empty object.
// Failures are returned as *ValidationError.
func (v *ValidationUtil) DecodeStrict(raw []byte, dst interface{}) error {
	return v.decode(raw, dst, true)
}

// Decode is DecodeStrict without the unknown key check: keys that are not
// exact json fields of dst are dropped before decoding.
func (v *ValidationUtil) Decode(raw []byte, dst interface{}) error {
	return v.decode(raw, dst, false)
}

func (v *ValidationUtil) decode(raw []byte, dst interface{}, strict bool) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !json.Valid(raw) {
		verr := idc_errors.NewValidationError()
		verr.AddForm("Malformed JSON")
		return verr
	}

	verr := idc_errors.NewValidationError()
	clean := checkObject(raw, reflect.TypeOf(dst).Elem(), "", strict, verr)
	if !verr.Empty() {
		return verr
	}

	if err := exactJSON.Unmarshal(clean, dst); err != nil {
		verr.AddForm(err.Error())
		return verr
	}
	return v.ValidateStruct(dst)
}

// checkObject compares the members of raw with the json fields of t and
// reports type mismatches, including null, the way the console's forms
// expect them. It returns raw without the members t does not declare.
func checkObject(raw json.RawMessage, t reflect.Type, path string, strict bool, verr *idc_errors.ValidationError) json.RawMessage {
	if got := jsonKind(raw); got != "object" {
		addIssue(verr, path, fmt.Sprintf("Expected object, received %s", got))
		return nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		addIssue(verr, path, "Malformed JSON")
		return nil
	}

	fields := jsonFields(t)
	kept := make(map[string]json.RawMessage, len(members))
	var unknown []string
	for key, value := range members {
		field, ok := fields[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}

		memberPath := key
		if path != "" {
			memberPath = path + "." + key
		}
		ft := derefType(field.Type)
		want, got := typeName(ft), jsonKind(value)
		if want != got {
			verr.AddField(memberPath, fmt.Sprintf("Expected %s, received %s", want, got))
			continue
		}
		if ft.Kind() == reflect.Struct {
			value = checkObject(value, ft, memberPath, false, verr)
		}
		kept[key] = value
	}

	if strict && len(unknown) > 0 {
		sort.Strings(unknown)
		addIssue(verr, path, fmt.Sprintf("Unrecognized key(s) in object: '%s'", strings.Join(unknown, "', '")))
	}

	clean, err := json.Marshal(kept)
	if err != nil {
		addIssue(verr, path, err.Error())
		return nil
	}
	return clean
}

func addIssue(verr *idc_errors.ValidationError, path, message string) {
	if path == "" {
		verr.AddForm(message)
		return
	}
	verr.AddField(path, message)
}

func jsonFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name := jsonName(f); name != "" && f.IsExported() {
			fields[name] = f
		}
	}
	return fields
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// jsonKind names the JSON type of a valid value.
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// ParseObject decodes raw as a JSON object so callers can inspect which
// keys were sent. An empty body is an empty object.
func (v *ValidationUtil) ParseObject(raw []byte) (map[string]json.RawMessage, error) {
	obj := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, decodeError(err)
	}
	if obj == nil {
		return map[string]json.RawMessage{}, nil
	}
	return obj, nil
}

// ValidateStruct runs the validate tags of s.
func (v *ValidationUtil) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := idc_errors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.AddField(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return verr
}

func decodeError(err error) *idc_errors.ValidationError {
	verr := idc_errors.NewValidationError()

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			verr.AddForm(fmt.Sprintf("Expected object, received %s", typeErr.Value))
		} else {
			verr.AddField(field, fmt.Sprintf("Expected %s, received %s", typeName(typeErr.Type), typeErr.Value))
		}
	case errors.As(err, &syntaxErr):
		verr.AddForm("Malformed JSON")
	default:
		verr.AddForm(err.Error())
	}
	return verr
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "url":
		return "Invalid url"
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

func typeName(t reflect.Type) string {
	switch t = derefType(t); t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
