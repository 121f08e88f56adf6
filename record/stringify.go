package record

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jo-migo/toml-to-rdb/errs"
)

// stringify returns the canonical text form a scalar is stored under.
//
// Integers and booleans use their default decimal/`true`/`false` forms,
// floats the shortest round-trippable form, datetimes RFC 3339 with
// fractional seconds kept when present, and strings pass through verbatim.
// Anything else, in particular an array or table nested where a scalar is
// expected, has no defined textual form and fails.
func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("%w: %T", errs.ErrUnsupportedScalar, value)
	}
}
