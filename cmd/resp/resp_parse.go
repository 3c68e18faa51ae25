package resp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// RESP2 data types understood by the server
const (
	RespStatus = '+' // +<string>\r\n
	RespError  = '-' // -<string>\r\n
	RespString = '$' // $<length>\r\n<bytes>\r\n
	RespInt    = ':' // :<number>\r\n
	RespArray  = '*' // *<len>\r\n...
)

// Limits on client supplied lengths, same as redis-server
const (
	MaxBulkLen  = 512 * 1024 * 1024
	MaxArrayLen = 1024 * 1024
)

var ErrEmptyLine = errors.New("ERR empty request line")
var ErrInvalidLen = errors.New("ERR invalid length")
var ErrBadTerminator = errors.New("ERR bulk string not terminated by CRLF")

// Read parses a single RESP value from r. A line that does not start with a
// type marker is an inline command and is returned as is.
func Read(r *bufio.Reader) (any, error) {
	l, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}

	line := strings.TrimRight(l, "\r\n")
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}

	switch line[0] {
	case RespInt:
		return strconv.Atoi(line[1:])
	case RespStatus:
		return line[1:], nil
	case RespString:
		return readString(r, line)
	case RespError:
		return errors.New(line[1:]), nil
	case RespArray:
		return readSlice(r, line)
	}

	return line, nil
}

func readString(r *bufio.Reader, line string) (any, error) {
	n, err := replyLen(line, MaxBulkLen)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}

	b := make([]byte, n+2)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	if b[n] != '\r' || b[n+1] != '\n' {
		return nil, ErrBadTerminator
	}

	return string(b[:n]), nil
}

func readSlice(r *bufio.Reader, line string) ([]any, error) {
	n, err := replyLen(line, MaxArrayLen)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}

	arr := make([]any, n)
	for i := 0; i < len(arr); i++ {
		v, err := Read(r)
		if err != nil {
			return arr, err
		}

		arr[i] = v
	}

	return arr, nil
}

// Parse the length of a bulk string or array. -1 is the null value.
func replyLen(line string, limit int) (int, error) {
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return 0, ErrInvalidLen
	}
	if n < -1 || n > limit {
		return 0, ErrInvalidLen
	}

	return n, nil
}
