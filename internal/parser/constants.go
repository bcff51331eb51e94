package parser

const (
	// MarkerPrefix is the namespace Strapi schema typings use for all
	// attribute combinators
	MarkerPrefix = "Attribute."

	// Markers that change how an attribute is emitted
	MarkerPrivate  = MarkerPrefix + "Private"
	MarkerRequired = MarkerPrefix + "Required"

	// Markers with a dedicated transformation
	MarkerEnumeration = MarkerPrefix + "Enumeration"
	MarkerRelation    = MarkerPrefix + "Relation"
	MarkerJSON        = MarkerPrefix + "JSON"
)

// Relation kinds that emit an array type
const (
	RelationOneToMany  = "oneToMany"
	RelationManyToMany = "manyToMany"
)

// scalarMapping pairs a scalar marker with the TypeScript type it emits.
type scalarMapping struct {
	marker string
	tsType string
}

// scalarMappings is checked in order after the dedicated markers; the
// markers do not overlap as substrings, so order only fixes determinism.
var scalarMappings = []scalarMapping{
	{MarkerPrefix + "String", "string"},
	{MarkerPrefix + "Email", "string"},
	{MarkerPrefix + "Password", "string"},
	{MarkerPrefix + "Text", "string"},
	{MarkerPrefix + "Integer", "number"},
	{MarkerPrefix + "BigInteger", "number"},
	{MarkerPrefix + "Decimal", "number"},
	{MarkerPrefix + "Boolean", "boolean"},
	{MarkerPrefix + "DateTime", "string"},
}

// jsonArrayDefaults are the DefaultTo payloads that switch a JSON attribute
// to an array type. Multi-line defaults arrive whitespace-collapsed, hence
// the spaced variant.
var jsonArrayDefaults = []string{
	"DefaultTo<[]>",
	"DefaultTo<[ ]>",
	"DefaultTo<'[]'>",
	`DefaultTo<"[]">`,
}
