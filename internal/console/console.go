// Package console handles the interactive surface: line-buffered
// numeric prompts on stdin and the bordered page tables on stdout.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/campuskit/enrollctl/internal/database"
)

const pageBorder = "+---|--------+"

// Prompter reads numeric answers from a line-buffered input stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Int64 writes the prompt and parses the next input line as an integer.
func (p *Prompter) Int64(prompt string) (int64, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, io.EOF
	}
	text := strings.TrimSpace(p.in.Text())
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", text, err)
	}
	return value, nil
}

// Int writes the prompt and parses the next input line as an int.
func (p *Prompter) Int(prompt string) (int, error) {
	value, err := p.Int64(prompt)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// WriteStudentPage renders one page of students as a bordered table:
//
//	Page 1
//	+---|--------+
//	|id |name    |
//	+---|--------+
//	|11 |John    |
//	+---|--------+
func WriteStudentPage(w io.Writer, page int, students []database.Student) {
	fmt.Fprintf(w, "Page %d\n", page)
	fmt.Fprintln(w, pageBorder)
	fmt.Fprintf(w, "|%-3s|%-8s|\n", "id", "name")
	fmt.Fprintln(w, pageBorder)
	for _, s := range students {
		fmt.Fprintf(w, "|%-3d|%-8s|\n", s.ID, s.Name)
	}
	fmt.Fprintln(w, pageBorder)
	fmt.Fprintln(w)
}
