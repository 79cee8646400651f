// internal/input/reader.go
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Reader reads lines and whitespace separated numbers from a console stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator.
// It returns io.EOF only when nothing is left to read.
func (rd *Reader) ReadLine() (string, error) {
	line, err := rd.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadToken skips leading whitespace and returns the next run of
// non-space characters.
func (rd *Reader) ReadToken() (string, error) {
	var sb strings.Builder
	for {
		c, _, err := rd.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(c) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(c)
	}
}

// ReadInt reads the next token as a base-10 integer.
func (rd *Reader) ReadInt() (int, error) {
	tok, err := rd.ReadToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("input %q is not an integer: %w", tok, err)
	}
	return n, nil
}

// ReadFloat reads the next token as a single precision float.
func (rd *Reader) ReadFloat() (float32, error) {
	tok, err := rd.ReadToken()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("input %q is not a floating point number: %w", tok, err)
	}
	return float32(f), nil
}
