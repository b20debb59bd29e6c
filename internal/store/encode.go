package store

import (
	"fmt"
	"strconv"
)

// encodeValue turns a staged cell value into the bytes the store persists.
// The store itself is typeless; this is the write-path half of the logical
// column types in the schema package.
func encodeValue(v any) []byte {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return x
	case string:
		return []byte(x)
	case bool:
		return []byte(strconv.FormatBool(x))
	case int:
		return []byte(strconv.FormatInt(int64(x), 10))
	case int32:
		return []byte(strconv.FormatInt(int64(x), 10))
	case int64:
		return []byte(strconv.FormatInt(x, 10))
	case float32:
		return []byte(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		return []byte(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		return []byte(fmt.Sprint(x))
	}
}
