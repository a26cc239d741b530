package jsdoc_test

import (
	"fmt"
	"log"

	jsdoc "github.com/Penify-dev/jsdoc-parser"
	"github.com/Penify-dev/jsdoc-parser/model"
)

// These examples double as README code samples.

func Example_parse() {
	doc, errs, err := jsdoc.Parse(`/**
 * Calculates the sum of two numbers
 * @param {number} a - First number
 * @param {number} b - Second number
 * @returns {number} The sum of a and b
 */`)
	if err != nil {
		log.Fatal(err)
	}
	if len(errs) > 0 {
		log.Println("Recovered:", jsdoc.FormatParseErrors(errs))
	}

	fmt.Println(doc.Description)
	for _, p := range doc.Params() {
		fmt.Printf("%s: %s\n", p.Name, p.TypeExpr)
	}
	// Output:
	// Calculates the sum of two numbers
	// a: number
	// b: number
}

func Example_editAndCompose() {
	doc := jsdoc.MustParse(`/**
 * @param {number} limit - Page size
 */`)

	doc.Description = "Fetches a page of results"
	doc.FindParam("limit").Optional = true
	doc.FindParam("limit").Default = "10"
	doc.AddTag(&model.ReturnsTag{TypeExpr: "Array<Result>", Description: "Matching results"})

	fmt.Println(jsdoc.Compose(doc))
	// Output:
	// /**
	//  * Fetches a page of results
	//  *
	//  * @param {number} [limit=10] - Page size
	//  * @returns {Array<Result>} Matching results
	//  */
}

func Example_fluent() {
	doc, _, err := jsdoc.NewParser().
		PreserveLineBreaks().
		Parse("/** @param {string} s - text */")
	if err != nil {
		log.Fatal(err)
	}

	text := jsdoc.NewComposer().
		WrapAt(80).
		Compose(doc)
	fmt.Println(text)
	// Output:
	// /**
	//  * @param {string} s - text
	//  */
}
