package giftcsv

import "github.com/tsawler/giftcsv/internal/textenc"

// ConvertOptions holds configuration for conversion.
type ConvertOptions struct {
	// Input decoding; "auto" sniffs a BOM, then UTF-8, then Windows-1252
	encoding string

	// Allow correct answers past "C"
	extendedLetters bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		encoding:        textenc.Auto,
		extendedLetters: false,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		encoding:        o.encoding,
		extendedLetters: o.extendedLetters,
	}
}
