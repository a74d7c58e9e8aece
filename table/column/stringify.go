package column

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Value returns the string form of a cell. A panicking accessor, a nil
// result or a nil pointer all render as "". The second result reports
// whether the accessor panicked.
func (c Column) Value(row Row) (s string, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			s, panicked = "", true
		}
	}()
	return Stringify(c.Accessor(row)), false
}

// Stringify coerces an accessor result to text.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return v.String()
	case error:
		if isNilPointer(v) {
			return ""
		}
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	if isNilPointer(v) {
		return ""
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
