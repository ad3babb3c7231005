package randomzh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Output formats accepted by -format.
const (
	FormatDebug = "debug"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// ErrInvalidFormat indicates an unknown output format.
var ErrInvalidFormat = errors.New("unknown output format")

// writeResult renders chars on one line.
//
// debug: ['一', '人']
// plain: 一人
// json:  ["一","人"]
func writeResult(out io.Writer, format string, chars []rune) error {
	var line string
	switch format {
	case FormatDebug:
		line = debugList(chars)
	case FormatPlain:
		line = string(chars)
	case FormatJSON:
		items := make([]string, len(chars))
		for i, c := range chars {
			items[i] = string(c)
		}
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		line = string(raw)
	default:
		return fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
	_, err := fmt.Fprintln(out, line)
	return err
}

func debugList(chars []rune) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range chars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.QuoteRune(c))
	}
	b.WriteByte(']')
	return b.String()
}
