package generator

import (
	"fmt"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"

	"github.com/achuchra/ts-types-from-strapi/internal/models"
	"github.com/achuchra/ts-types-from-strapi/internal/parser"
)

// Options controls a transform run.
type Options struct {
	// Filter restricts output to interfaces whose name matches the glob.
	// Nil emits everything.
	Filter glob.Glob
	// TrailingNewline appends a final newline to non-empty output.
	TrailingNewline bool
}

// Generator turns Strapi schema declaration text into plain TypeScript
// interface declarations.
type Generator struct {
	options Options
}

// NewGenerator creates a generator with the given options.
func NewGenerator(options Options) *Generator {
	return &Generator{options: options}
}

// Generate runs the full pipeline over source text: extract interface
// blocks, parse and transform their attributes, render. Interfaces left
// with no attributes are excluded. The same source always produces the
// same output bytes.
func (g *Generator) Generate(source string) (output *models.GeneratedOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &models.GeneratorError{
				Type:    models.ErrorTypeParse,
				Message: fmt.Sprintf("unexpected parse failure: %v", r),
			}
		}
	}()

	blocks := parser.ExtractBlocks(source)
	interfaces := make([]models.ParsedInterface, 0, len(blocks))
	for _, block := range blocks {
		if g.options.Filter != nil && !g.options.Filter.Match(block.Name) {
			log.WithFields(log.Fields{
				"interface": block.Name,
			}).Debug("interface filtered out")
			continue
		}

		attributes := parser.ParseAttributes(block.Attributes)
		if len(attributes) == 0 {
			log.WithFields(log.Fields{
				"interface": block.Name,
			}).Debug("no surviving attributes, excluding interface")
			continue
		}

		interfaces = append(interfaces, models.ParsedInterface{
			Name:       block.Name,
			Attributes: attributes,
		})
	}

	content := Render(interfaces)
	if content != "" && g.options.TrailingNewline {
		content += "\n"
	}

	return &models.GeneratedOutput{
		Content:       content,
		Interfaces:    interfaces,
		BlocksScanned: len(blocks),
	}, nil
}
