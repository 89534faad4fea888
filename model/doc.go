// Package model provides the intermediate representation (IR) for quiz
// content read from a GIFT document.
//
// All parsing operations ultimately produce these types, making them the
// primary API for consuming converted content.
//
// # Blocks
//
// A [Block] is the raw group of lines that makes up one question entry in the
// source document. Blocks are produced by the gift chunker and handed to the
// extractor one at a time.
//
// # Questions
//
// A [Question] is the structured result of extracting a block:
//
//	q := model.Question{
//	    Category:      "Geography",
//	    Text:          "Capital of Italy?",
//	    Answers:       []string{"Milan", "Rome", "Turin"},
//	    CorrectAnswer: "B",
//	}
//	row := q.Row() // category, text, answers..., letter
//
// # Documents
//
// A [Document] holds the questions of one converted source in source order.
package model
