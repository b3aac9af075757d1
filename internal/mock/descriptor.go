// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mock

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// QueryDescriptor is the comparable identity of a structured query or
// mutation call: the name of the GraphQL document plus the variables it was
// invoked with.
type QueryDescriptor struct {
	Document  string
	Variables map[string]any
}

// Equal reports whether two descriptors identify the same call. Documents
// must match exactly; variable mappings must have identical key sets with
// deeply equal values. Key order is irrelevant.
func (d QueryDescriptor) Equal(other QueryDescriptor) bool {
	if d.Document != other.Document {
		return false
	}
	if len(d.Variables) != len(other.Variables) {
		return false
	}
	for key, value := range d.Variables {
		otherValue, ok := other.Variables[key]
		if !ok || !equalValue(value, otherValue) {
			return false
		}
	}
	return true
}

// String renders the descriptor with variables in sorted key order so error
// messages are stable.
func (d QueryDescriptor) String() string {
	keys := make([]string, 0, len(d.Variables))
	for key := range d.Variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(d.Document)
	sb.WriteByte('(')
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", key, d.Variables[key])
	}
	sb.WriteByte(')')
	return sb.String()
}

// ProcedureDescriptor is the comparable identity of a path-addressed
// procedure call: an ordered path of name segments (namespace, operation)
// plus the ordered argument list.
type ProcedureDescriptor struct {
	Path []string
	Args []any
}

// Equal reports whether two descriptors identify the same procedure call.
// Path segments compare element-wise; arguments compare by deep structural
// equality in order. Unlike query variables, order matters on both.
func (d ProcedureDescriptor) Equal(other ProcedureDescriptor) bool {
	if len(d.Path) != len(other.Path) || len(d.Args) != len(other.Args) {
		return false
	}
	for i, segment := range d.Path {
		if segment != other.Path[i] {
			return false
		}
	}
	for i, arg := range d.Args {
		if !equalValue(arg, other.Args[i]) {
			return false
		}
	}
	return true
}

func (d ProcedureDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(d.Path, "."))
	sb.WriteByte('(')
	for i, arg := range d.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", arg)
	}
	sb.WriteByte(')')
	return sb.String()
}

// equalValue compares two values structurally rather than by identity.
// Descriptor values cross a JSON boundary on the stub-server path and are
// often built with typed wrappers (graphql.String, graphql.Int) on the
// client path, so scalars compare by kind: any string kind against any
// string kind, any numeric kind against any numeric kind. Maps with string
// keys compare by key set, slices element-wise in order. Anything else
// falls back to reflect.DeepEqual.
func equalValue(a, b any) bool {
	av := indirect(reflect.ValueOf(a))
	bv := indirect(reflect.ValueOf(b))

	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}

	switch {
	case isNumeric(av) && isNumeric(bv):
		return asFloat(av) == asFloat(bv)
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return av.String() == bv.String()
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		return av.Bool() == bv.Bool()
	case isSequence(av) && isSequence(bv):
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !equalValue(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case isStringMap(av) && isStringMap(bv):
		if av.Len() != bv.Len() {
			return false
		}
		for _, key := range av.MapKeys() {
			otherKey := reflect.ValueOf(key.String()).Convert(bv.Type().Key())
			otherValue := bv.MapIndex(otherKey)
			if !otherValue.IsValid() {
				return false
			}
			if !equalValue(av.MapIndex(key).Interface(), otherValue.Interface()) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(av.Interface(), bv.Interface())
	}
}

// indirect unwraps pointers and interfaces. A nil pointer unwraps to the
// invalid value, which equalValue treats the same as a nil interface.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func asFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func isStringMap(v reflect.Value) bool {
	return v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String
}
