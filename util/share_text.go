package util

import (
	"fmt"
	"strings"

	"caffind-server/models/cafe"
)

// ShareText builds a plain-text summary of a recommendation list for
// clients without a native share sheet.
func ShareText(cafes []cafe.Cafe) string {
	var b strings.Builder
	b.WriteString("Discover great cafes in Moradabad with Caffind:\n\n")
	for _, c := range cafes {
		fmt.Fprintf(&b, "- %s\n", c.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ShareSingleText builds a plain-text summary for one cafe.
func ShareSingleText(c cafe.Cafe) string {
	desc := c.Description
	if desc == "" {
		desc = "A great cafe in Moradabad"
	}
	text := fmt.Sprintf("Check out %s in Moradabad!", c.Name)
	if c.Address != "" {
		text += "\n" + c.Address
	}
	return text + "\n" + desc
}
