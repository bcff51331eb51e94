package parser

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/achuchra/ts-types-from-strapi/internal/models"
)

var (
	// attributeStartPattern recognizes the first line of an attribute: an
	// identifier, a colon, then the start of a type expression.
	attributeStartPattern = regexp.MustCompile(`^(\w+):\s*(.*)$`)

	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// ParseAttributes walks the raw attribute text of one interface block and
// returns the surviving attributes in source order. Type expressions that
// span lines are joined until bracket-balanced and terminated; private
// attributes are dropped.
func ParseAttributes(block string) []models.Attribute {
	rawLines := strings.Split(block, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	attributes := make([]models.Attribute, 0, len(lines))
	for i := 0; i < len(lines); {
		match := attributeStartPattern.FindStringSubmatch(lines[i])
		if match == nil {
			log.WithFields(log.Fields{
				"line": lines[i],
			}).Debug("line does not start an attribute, skipping")
			i++
			continue
		}
		name, expression := match[1], match[2]
		i++
		for i < len(lines) && !expressionComplete(expression) {
			expression += " " + lines[i]
			i++
		}

		raw := collapseWhitespace(strings.TrimSuffix(expression, ";"))
		if strings.Contains(raw, MarkerPrivate) {
			log.WithFields(log.Fields{
				"attribute": name,
			}).Debug("private attribute, dropping")
			continue
		}

		attributes = append(attributes, models.Attribute{
			Name:     name,
			Type:     TransformType(raw),
			Required: strings.Contains(raw, MarkerRequired),
		})
	}
	return attributes
}

// expressionComplete reports whether a type expression has terminated: it
// ends with a semicolon and every angle bracket, brace, and square bracket
// opened inside it has been closed again.
func expressionComplete(expression string) bool {
	if !strings.HasSuffix(expression, ";") {
		return false
	}
	return netOpen(expression, "<", ">") == 0 &&
		netOpen(expression, "{", "}") == 0 &&
		netOpen(expression, "[", "]") == 0
}

func netOpen(s, open, close string) int {
	return strings.Count(s, open) - strings.Count(s, close)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(s, " "))
}
