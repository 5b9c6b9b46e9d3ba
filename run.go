package sep

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Interpret parses and evaluates one line and returns the text to show for
// it: the result, an evaluation error, or the parse error message.
func Interpret(line string) string {
	node, err := Parse(line)
	if err != nil {
		return err.Error()
	}
	return Format(Eval(node))
}

// EachLine calls fn with every non-blank line of r, without its line
// terminator. It stops at the first error from r or fn.
func EachLine(r io.Reader, fn func(line string) error) error {
	buf := bufio.NewReader(r)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// Run interprets every non-blank line of r and writes one outcome per line
// to w.
func Run(r io.Reader, w io.Writer) error {
	return EachLine(r, func(line string) error {
		_, err := fmt.Fprintln(w, Interpret(line))
		return err
	})
}
