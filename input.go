package giftcsv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// input holds the raw document shared by a Converter and every Converter
// derived from it. The document is read at most once.
type input struct {
	filename string
	reader   io.Reader

	once sync.Once
	data []byte
	err  error
}

func fileInput(filename string) *input {
	return &input{filename: filename}
}

func readerInput(r io.Reader) *input {
	return &input{reader: r}
}

func bytesInput(data []byte) *input {
	in := &input{data: data}
	in.once.Do(func() {})
	return in
}

// bytes returns the raw document, reading it on first use.
func (in *input) bytes() ([]byte, error) {
	in.once.Do(func() {
		switch {
		case in.reader != nil:
			in.data, in.err = io.ReadAll(in.reader)
		case in.filename != "":
			in.data, in.err = os.ReadFile(in.filename)
		default:
			in.err = errors.New("no input specified")
		}
		if in.err != nil {
			in.err = fmt.Errorf("reading input: %w", in.err)
		}
	})
	return in.data, in.err
}
