package parser

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	enumerationListPattern  = regexp.MustCompile(`Enumeration<\s*\[(.*?)\]\s*>`)
	enumerationCommaPattern = regexp.MustCompile(`,\s*`)

	// relationPattern captures the quoted kind/target pair immediately
	// following the relation marker.
	relationPattern = regexp.MustCompile(`Relation<\s*'([^']+)'\s*,\s*'([^']+)'`)

	uidSeparatorPattern = regexp.MustCompile(`[-.]`)
)

// TransformType maps a joined, whitespace-collapsed type expression to the
// plain TypeScript type it should be emitted as. Markers are matched by
// substring in priority order: enumeration, relation, JSON, scalars, then
// the any fallback.
func TransformType(expression string) string {
	switch {
	case strings.Contains(expression, MarkerEnumeration):
		return transformEnumeration(expression)
	case strings.Contains(expression, MarkerRelation):
		return transformRelation(expression)
	case strings.Contains(expression, MarkerJSON):
		return transformJSON(expression)
	}

	for _, mapping := range scalarMappings {
		if strings.Contains(expression, mapping.marker) {
			return mapping.tsType
		}
	}

	log.WithFields(log.Fields{
		"expression": expression,
	}).Debug("no marker matched, emitting any")
	return "any"
}

// transformEnumeration turns the bracketed literal list into a union type,
// preserving the quoting style of the source.
func transformEnumeration(expression string) string {
	match := enumerationListPattern.FindStringSubmatch(expression)
	if match == nil {
		log.WithFields(log.Fields{
			"expression": expression,
		}).Debug("enumeration list not found, emitting string")
		return "string"
	}
	values := strings.TrimSpace(match[1])
	return enumerationCommaPattern.ReplaceAllString(values, " | ")
}

// transformRelation resolves the related content type's display name and
// appends an array suffix for to-many kinds.
func transformRelation(expression string) string {
	match := relationPattern.FindStringSubmatch(expression)
	if match == nil {
		log.WithFields(log.Fields{
			"expression": expression,
		}).Debug("relation kind/target pair not found, emitting any")
		return "any"
	}
	kind, target := match[1], match[2]
	name := DisplayName(target)
	if kind == RelationOneToMany || kind == RelationManyToMany {
		return name + "[]"
	}
	return name
}

// transformJSON picks the array type when the attribute declares an
// empty-array default, and the generic dictionary type otherwise.
func transformJSON(expression string) string {
	for _, token := range jsonArrayDefaults {
		if strings.Contains(expression, token) {
			return "any[]"
		}
	}
	return "Record<string, any>"
}

// DisplayName converts a schema UID like api::article.article into the
// PascalCase interface name Strapi generates for it (ApiArticleArticle):
// namespace separators split first, each fragment then splits on dashes and
// dots, and every word is capitalized and concatenated.
func DisplayName(uid string) string {
	var builder strings.Builder
	for _, segment := range strings.Split(uid, "::") {
		for _, word := range uidSeparatorPattern.Split(segment, -1) {
			if word == "" {
				continue
			}
			builder.WriteString(strings.ToUpper(word[:1]))
			builder.WriteString(word[1:])
		}
	}
	return builder.String()
}
