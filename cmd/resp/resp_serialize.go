// Serialization helpers for the REdis Serialization Protocol, see:
// https://redis.io/docs/reference/protocol-spec/#resp-protocol-description
package resp

import (
	"fmt"
	"strconv"
	"strings"
)

type SimpleString string

func Serialize(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return SerializeNil(), nil
	case int:
		return SerializeInt(v), nil
	case SimpleString:
		return SerializeSimpleStr(string(v)), nil
	case string:
		return SerializeStr(v), nil
	case []string:
		return SerializeArray(v), nil
	case []any:
		var out strings.Builder
		out.WriteString("*" + strconv.Itoa(len(v)) + "\r\n")
		for _, el := range v {
			r, err := Serialize(el)
			if err != nil {
				return "", err
			}
			out.WriteString(r)
		}
		return out.String(), nil
	case error:
		return SerializeError(v), nil
	}

	return "", fmt.Errorf("value of type '%T' cannot be serialized", v)
}

func SerializeNil() string {
	return "$-1\r\n"
}

func SerializeSimpleStr(str string) string {
	return "+" + str + "\r\n"
}

func SerializeStr(str string) string {
	return "$" + strconv.Itoa(len(str)) + "\r\n" + str + "\r\n"
}

func SerializeError(err error) string {
	return "-" + err.Error() + "\r\n"
}

func SerializeInt(n int) string {
	return ":" + strconv.Itoa(n) + "\r\n"
}

func SerializeArray(arr []string) string {
	var out strings.Builder
	out.WriteString("*" + strconv.Itoa(len(arr)) + "\r\n")
	for _, s := range arr {
		out.WriteString(SerializeStr(s))
	}

	return out.String()
}
