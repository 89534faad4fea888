// Package giftcsv provides a fluent API for converting GIFT quiz files into
// tabular form, one row per multiple-choice question.
//
// Basic usage:
//
//	questions, warnings, err := giftcsv.Open("quiz.gift").Questions()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", giftcsv.FormatWarnings(warnings))
//	}
//
// Writing CSV straight to a file:
//
//	_, err := giftcsv.Open("quiz.gift").
//	    Encoding("windows-1252").
//	    ToFile("quiz.csv")
//
// For lower-level access to the chunker and extractor, use the gift package.
package giftcsv

import (
	"io"
)

// Open returns a Converter that reads the named GIFT file.
// Nothing is read until a terminal operation such as Questions() is called.
//
// Example:
//
//	questions, _, err := giftcsv.Open("quiz.gift").Questions()
func Open(filename string) *Converter {
	return &Converter{
		in:      fileInput(filename),
		source:  filename,
		options: defaultOptions(),
	}
}

// FromBytes returns a Converter over raw document bytes. The bytes are
// decoded with the configured encoding, as for files.
func FromBytes(data []byte) *Converter {
	return &Converter{
		in:      bytesInput(data),
		options: defaultOptions(),
	}
}

// FromString returns a Converter over an already decoded document.
//
// Example:
//
//	questions, _, err := giftcsv.FromString(doc).Questions()
func FromString(doc string) *Converter {
	return FromBytes([]byte(doc))
}

// FromReader returns a Converter that reads the whole document from r on
// the first terminal operation. Converters derived from it share the bytes
// read, so r is consumed once. The caller remains responsible for closing r.
func FromReader(r io.Reader) *Converter {
	return &Converter{
		in:      readerInput(r),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := giftcsv.Must(giftcsv.Open("quiz.gift").Blocks())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustQuestions is a helper that wraps a call to Questions() or Document()
// and panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	questions := giftcsv.MustQuestions(giftcsv.Open("quiz.gift").Questions())
func MustQuestions[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
