package models

// RawInterfaceBlock is an exported interface declaration lifted out of a
// schema source file before attribute parsing. Attributes holds the raw
// text between the `attributes: {` opener and its closing brace.
type RawInterfaceBlock struct {
	Name       string
	Attributes string
}

// Attribute is a single schema attribute after type transformation.
type Attribute struct {
	Name     string
	Type     string
	Required bool
}

// ParsedInterface is an interface together with its surviving attributes,
// in source order.
type ParsedInterface struct {
	Name       string
	Attributes []Attribute
}

// GeneratedOutput is the result of one full transform run.
type GeneratedOutput struct {
	// Content is the rendered TypeScript, byte-for-byte what gets written.
	Content string
	// Interfaces are the emitted interfaces, in source order.
	Interfaces []ParsedInterface
	// BlocksScanned counts every interface block found in the source,
	// including ones later filtered or excluded for having no attributes.
	BlocksScanned int
}
