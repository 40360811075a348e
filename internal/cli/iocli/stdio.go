package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in  io.Reader
	out io.Writer
	rd  *bufio.Reader
}

func NewStdio() IO {
	return NewStream(os.Stdin, os.Stdout)
}

// NewStream creates IO over arbitrary streams, e.g. the ones of a cobra command
func NewStream(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  in,
		out: out,
		rd:  bufio.NewReader(in),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.rd.ReadString('\n')
	// Последняя строка без перевода строки тоже считается вводом
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// IsInteractive сообщает, подключен ли ввод к терминалу
func (s *Stdio) IsInteractive() bool {
	f, ok := s.in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
