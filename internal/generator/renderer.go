package generator

import (
	"fmt"
	"strings"

	"github.com/achuchra/ts-types-from-strapi/internal/models"
)

// Render emits the TypeScript declarations for the parsed interfaces,
// blank-line separated, in the order given.
func Render(interfaces []models.ParsedInterface) string {
	blocks := make([]string, 0, len(interfaces))
	for _, iface := range interfaces {
		blocks = append(blocks, RenderInterface(iface))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderInterface emits a single export interface block. Attributes not
// marked required carry the optional `?` suffix.
func RenderInterface(iface models.ParsedInterface) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("export interface %s {\n", iface.Name))
	for _, attribute := range iface.Attributes {
		optionalMark := "?"
		if attribute.Required {
			optionalMark = ""
		}
		sb.WriteString(fmt.Sprintf("  %s%s: %s;\n", attribute.Name, optionalMark, attribute.Type))
	}
	sb.WriteString("}")
	return sb.String()
}
