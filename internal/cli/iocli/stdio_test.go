package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStream(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStream(strings.NewReader("  yes \nno\nlast"), &out)

	first, err := stdio.ReadInput("Continue? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", first)

	second, err := stdio.ReadInput("Again? ")
	require.NoError(t, err)
	assert.Equal(t, "no", second)

	// Строка без завершающего перевода строки
	third, err := stdio.ReadInput("Last? ")
	require.NoError(t, err)
	assert.Equal(t, "last", third)

	_, err = stdio.ReadInput("Nothing left? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Continue? Again? Last? Nothing left? ", out.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput_Pipe(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()
	defer func() { _ = r.Close() }()

	stdio := NewStream(r, io.Discard)
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)

	// pipe не является терминалом
	assert.False(t, stdio.IsInteractive())
}

func TestWriteAndIsInteractive(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStream(strings.NewReader(""), &out)

	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "raw", out.String())
	assert.False(t, stdio.IsInteractive())
}
