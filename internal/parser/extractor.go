package parser

import (
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/achuchra/ts-types-from-strapi/internal/models"
)

var (
	// interfaceHeaderPattern matches a top-level exported interface
	// declaration. Nested interfaces (the shared content-type registry at
	// the bottom of Strapi's schema file) are indented and never match.
	interfaceHeaderPattern = regexp.MustCompile(`(?m)^export interface (\w+)`)

	attributesOpenPattern = regexp.MustCompile(`attributes:\s*\{`)

	// subBlockClosePattern matches the attributes sub-block terminator: a
	// closing brace alone on a line, optionally followed by a semicolon.
	// Closers nested inside attribute type expressions sit inside generic
	// angle brackets and are always followed by `>`, so they never match.
	subBlockClosePattern = regexp.MustCompile(`(?m)^\s*\};?\s*$`)
)

// ExtractBlocks finds every exported interface declaration carrying an
// attributes sub-block and returns them in source order. Interfaces without
// one are skipped. An unterminated sub-block extends to the end of the
// interface body.
func ExtractBlocks(source string) []models.RawInterfaceBlock {
	headers := interfaceHeaderPattern.FindAllStringSubmatchIndex(source, -1)
	blocks := make([]models.RawInterfaceBlock, 0, len(headers))
	for i, header := range headers {
		name := source[header[2]:header[3]]

		bodyEnd := len(source)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		body := source[header[1]:bodyEnd]

		open := attributesOpenPattern.FindStringIndex(body)
		if open == nil {
			log.WithFields(log.Fields{
				"interface": name,
			}).Debug("interface has no attributes sub-block, skipping")
			continue
		}

		inner := body[open[1]:]
		if closing := subBlockClosePattern.FindStringIndex(inner); closing != nil {
			inner = inner[:closing[0]]
		}

		blocks = append(blocks, models.RawInterfaceBlock{
			Name:       name,
			Attributes: inner,
		})
	}
	return blocks
}
