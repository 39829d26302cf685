package statsapi

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Preview returns the first editorial preview article, if any
func (c *GameContent) Preview() *Article {
	if len(c.Editorial.Preview.Items) == 0 {
		return nil
	}
	return &c.Editorial.Preview.Items[0]
}

// PreviewText reduces an HTML article body to plain text, one paragraph per
// block separated by blank lines.
func PreviewText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find("script, style").Remove()

	paragraphs := make([]string, 0)
	doc.Find("p").Each(func(i int, sel *goquery.Selection) {
		if text := collapseSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	// bodies without <p> markup
	if len(paragraphs) == 0 {
		if text := collapseSpace(doc.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
