package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oakmound/hcs"
	"golang.org/x/net/html"
)

// Regenerates the selector pattern lookup from a local copy of the W3C
// selectors table (the "Selectors overview" section of the Level 3
// recommendation, saved as selectortypes.htm next to this tool).
const name = "selectortypes.htm"

var fieldNames = []string{"Pattern", "Meaning", "Described", "Origin"}

func main() {
	readFile, err := os.Open(name)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer readFile.Close()

	doc, err := hcs.ParseHTML(readFile)
	if err != nil {
		fmt.Printf("failed to parse html: %s\n", err.Error())
		return
	}

	rows, err := doc.Select("tbody > tr")
	if err != nil {
		fmt.Println(err)
		return
	}

	var sb strings.Builder
	sb.WriteString("package hcs\n\nvar (\n\tCSS3SelectorInfoLookup = []CSS3SelectorInfo{\n")
	for _, row := range rows.Nodes() {
		cells, err := hcs.SelectFrom([]*html.Node{row}, "td, th")
		if err != nil {
			fmt.Println(err)
			return
		}
		if cells.Len() == 0 {
			continue
		}
		sb.WriteString("\t\t{\n")
		for i, cell := range cells.Nodes() {
			if i >= len(fieldNames) {
				break
			}
			sb.WriteString(fmt.Sprintf("\t\t\t%s: %q,\n", fieldNames[i], textContent(cell)))
		}
		sb.WriteString("\t\t},\n")
	}
	sb.WriteString("\t}\n)\n")

	err = os.WriteFile("css3_selectors.gen.go", []byte(sb.String()), 0644)
	if err != nil {
		fmt.Println(err)
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
