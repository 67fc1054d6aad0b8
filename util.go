package lol

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Bool returns a pointer to b, for optional boolean arguments.
func Bool(b bool) *bool { return &b }

// joinIDs concats ids with ','.
func joinIDs(ids []int64) string {
	b := make([]byte, 0, len(ids)*10)
	for i, id := range ids {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, id, 10)
	}
	return string(b)
}

// closeBody drains a little of res.Body before closing it,
// so the transport can reuse the connection.
func closeBody(res *http.Response) {
	if res == nil || res.Body == nil {
		return
	}
	io.CopyN(ioutil.Discard, res.Body, 512)
	res.Body.Close()
}

// convertToString formats a path value.
func convertToString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case []int64:
		return joinIDs(v)
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

// ParseEpochMilliseconds converts riot timestamps to time.Time.
func ParseEpochMilliseconds(ms int64) time.Time {
	return time.Unix(0, ms*int64(time.Millisecond))
}

func checkID(what string, id int64) error {
	if id <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s must be a positive integer, got %d", what, id)
	}
	return nil
}

func checkIDs(what string, ids []int64, max int) error {
	if len(ids) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "at least one %s is required", what)
	}
	if len(ids) > max {
		return errors.Wrapf(ErrInvalidArgument, "at most %d %ss are allowed at once, got %d", max, what, len(ids))
	}
	for _, id := range ids {
		if err := checkID(what, id); err != nil {
			return err
		}
	}
	return nil
}

func checkName(what, name string) error {
	if name == "" {
		return errors.Wrapf(ErrInvalidArgument, "%s must be a non-empty string", what)
	}
	return nil
}
