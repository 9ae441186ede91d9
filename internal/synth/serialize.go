// Package synth turns declared stacks into CloudFormation templates.
//
// Serialization is reflection-based: struct field names become property
// names (PascalCase, as CloudFormation expects), zero values are omitted,
// and values that point at resources or parameters registered in the same
// stack resolve to Ref / Fn::GetAtt intrinsics. The same walk records which
// resources reference which, feeding dependency ordering, the graph command
// and the linter.
package synth

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
	"github.com/GraemeHosford/vpc-pluralsight/intrinsics"
)

// resolver carries per-resource serialization state: the stack used for
// pointer resolution and the dependency sets collected along the way.
type resolver struct {
	stack     *vpcnet.Stack
	deps      map[string]bool
	attrRefs  map[string]bool
	paramRefs map[string]bool
}

func newResolver(s *vpcnet.Stack) *resolver {
	return &resolver{
		stack:     s,
		deps:      make(map[string]bool),
		attrRefs:  make(map[string]bool),
		paramRefs: make(map[string]bool),
	}
}

// Properties serializes a resource struct to CloudFormation properties.
func Properties(s *vpcnet.Stack, r vpcnet.Resource) (map[string]any, error) {
	rs := newResolver(s)
	return rs.structProps(reflect.ValueOf(r))
}

// Value serializes an arbitrary value (an output value, a mapping table)
// against the given stack.
func Value(s *vpcnet.Stack, v any) (any, error) {
	rs := newResolver(s)
	return rs.value(reflect.ValueOf(v))
}

func (rs *resolver) addRef(name string) error {
	if strings.HasPrefix(name, "AWS::") {
		return nil // pseudo-parameter
	}
	if _, ok := rs.stack.Get(name); ok {
		rs.deps[name] = true
		return nil
	}
	if _, ok := rs.stack.GetParameter(name); ok {
		rs.paramRefs[name] = true
		return nil
	}
	return fmt.Errorf("reference to %q which is not a resource or parameter of stack %s", name, rs.stack.Name)
}

// resolveGetAtt maps a GetAtt target (logical ID or registered pointer) to
// its logical ID.
func (rs *resolver) resolveGetAtt(g intrinsics.GetAtt) (string, error) {
	if name, ok := g.Resource.(string); ok {
		if _, exists := rs.stack.Get(name); !exists {
			return "", fmt.Errorf("GetAtt %s.%s: no resource %q in stack %s", name, g.Attribute, name, rs.stack.Name)
		}
		return name, nil
	}
	if name, ok := rs.stack.NameOf(g.Resource); ok {
		return name, nil
	}
	return "", fmt.Errorf("GetAtt .%s references a resource not registered in stack %s", g.Attribute, rs.stack.Name)
}

// value converts a reflect.Value to a JSON-compatible value, resolving
// intrinsics and registered pointers along the way.
func (rs *resolver) value(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		return rs.value(v.Elem())
	}

	// A pointer registered with the stack serializes as a Ref to its
	// logical ID. Unregistered pointers are dereferenced.
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, nil
		}
		if name, ok := rs.stack.NameOf(v.Interface()); ok {
			if err := rs.addRef(name); err != nil {
				return nil, err
			}
			return map[string]any{"Ref": name}, nil
		}
		return rs.value(v.Elem())
	}

	switch iv := v.Interface().(type) {
	case intrinsics.Ref:
		if err := rs.addRef(iv.Name); err != nil {
			return nil, err
		}
		return map[string]any{"Ref": iv.Name}, nil

	case intrinsics.GetAtt:
		name, err := rs.resolveGetAtt(iv)
		if err != nil {
			return nil, err
		}
		rs.deps[name] = true
		rs.attrRefs[name] = true
		return map[string]any{"Fn::GetAtt": []any{name, iv.Attribute}}, nil

	case intrinsics.Parameter:
		// Parameters are normally registered (and referenced) by pointer,
		// which is handled above. A by-value copy still knows its name.
		if iv.Name() == "" {
			return nil, fmt.Errorf("parameter used as a value before registration in stack %s", rs.stack.Name)
		}
		rs.paramRefs[iv.Name()] = true
		return map[string]any{"Ref": iv.Name()}, nil

	case intrinsics.Sub:
		return map[string]any{"Fn::Sub": iv.String}, nil

	case intrinsics.SubWithMap:
		vars := make(map[string]any, len(iv.Vars))
		for k, val := range iv.Vars {
			sv, err := rs.value(reflect.ValueOf(val))
			if err != nil {
				return nil, err
			}
			vars[k] = sv
		}
		return map[string]any{"Fn::Sub": []any{iv.String, vars}}, nil

	case intrinsics.Join:
		vals, err := rs.anySlice(iv.Values)
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::Join": []any{iv.Delimiter, vals}}, nil

	case intrinsics.Select:
		list, err := rs.value(reflect.ValueOf(iv.List))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::Select": []any{iv.Index, list}}, nil

	case intrinsics.Split:
		src, err := rs.value(reflect.ValueOf(iv.Source))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::Split": []any{iv.Delimiter, src}}, nil

	case intrinsics.GetAZs:
		region := any("")
		if iv.Region != nil {
			r, err := rs.value(reflect.ValueOf(iv.Region))
			if err != nil {
				return nil, err
			}
			region = r
		}
		return map[string]any{"Fn::GetAZs": region}, nil

	case intrinsics.Cidr:
		block, err := rs.value(reflect.ValueOf(iv.IpBlock))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::Cidr": []any{block, iv.Count, iv.CidrBits}}, nil

	case intrinsics.Base64:
		val, err := rs.value(reflect.ValueOf(iv.Value))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::Base64": val}, nil

	case intrinsics.ImportValue:
		name, err := rs.value(reflect.ValueOf(iv.Name))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::ImportValue": name}, nil

	case intrinsics.FindInMap:
		top, err := rs.value(reflect.ValueOf(iv.TopLevelKey))
		if err != nil {
			return nil, err
		}
		second, err := rs.value(reflect.ValueOf(iv.SecondLevelKey))
		if err != nil {
			return nil, err
		}
		return map[string]any{"Fn::FindInMap": []any{iv.MapName, top, second}}, nil
	}

	// Custom marshalers (policy principals and the like).
	if v.CanInterface() {
		if marshaler, ok := v.Interface().(json.Marshaler); ok {
			data, err := marshaler.MarshalJSON()
			if err != nil {
				return nil, err
			}
			var result any
			if err := json.Unmarshal(data, &result); err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		return rs.structProps(v)

	case reflect.Slice:
		if v.Len() == 0 {
			return nil, nil
		}
		result := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := rs.value(v.Index(i))
			if err != nil {
				return nil, err
			}
			result[i] = elem
		}
		return result, nil

	case reflect.Map:
		if v.Len() == 0 {
			return nil, nil
		}
		result := make(map[string]any)
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			val, err := rs.value(iter.Value())
			if err != nil {
				return nil, err
			}
			result[key] = val
		}
		return result, nil

	case reflect.String:
		return v.String(), nil

	case reflect.Bool:
		return v.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil

	case reflect.Float32, reflect.Float64:
		return v.Float(), nil

	default:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, err
		}
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return result, nil
	}
}

func (rs *resolver) anySlice(vals []any) ([]any, error) {
	result := make([]any, len(vals))
	for i, val := range vals {
		sv, err := rs.value(reflect.ValueOf(val))
		if err != nil {
			return nil, err
		}
		result[i] = sv
	}
	return result, nil
}

// structProps serializes a struct's exported fields to a property map.
func (rs *resolver) structProps(v reflect.Value) (map[string]any, error) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}

	result := make(map[string]any)
	typ := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := v.Field(i)

		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		if isZeroValue(fieldVal) {
			continue
		}

		serialized, err := rs.value(fieldVal)
		if err != nil {
			return nil, err
		}
		if serialized != nil {
			result[name] = serialized
		}
	}

	return result, nil
}

// fieldName returns the property name for a struct field: the json tag when
// present, otherwise the Go field name.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}

// isZeroValue reports whether the value is the zero value for its type.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.String:
		return v.String() == ""
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Struct:
		if v.CanInterface() {
			if zeroer, ok := v.Interface().(interface{ IsZero() bool }); ok {
				return zeroer.IsZero()
			}
		}
		return false
	default:
		return false
	}
}
