package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "hotel-manager/errors"
)

const maxLineLen = 2 << 20

// Console reads operator answers line by line and writes prompts and results.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)
	return &Console{in: sc, out: w}
}

func (c *Console) Out() io.Writer {
	return c.out
}

// Ask prints label and returns the next line without its line ending.
// It returns io.EOF once input is exhausted.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

// AskInt is Ask for whole numbers.
func (c *Console) AskInt(label string) (int, error) {
	line, err := c.Ask(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeValidation,
			fmt.Sprintf("%q is not a number", strings.TrimSpace(line)), apperrors.ErrValidation)
	}
	return n, nil
}

// Confirm accepts y, Y or yes as agreement; any other answer declines.
func (c *Console) Confirm(label string) (bool, error) {
	line, err := c.Ask(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
