package ai

// Kind enumerates the JSON shapes a response schema can describe. Only the
// shapes the prompt builders actually need are modelled.
type Kind int

const (
	KindString Kind = iota
	KindObject
	KindArray
)

// Schema is a provider-neutral description of the expected response shape.
// Prompt builders produce it; each Client implementation translates it into
// whatever structured-output mechanism its provider offers.
type Schema struct {
	Kind        Kind
	Description string

	// Properties and Required apply when Kind is KindObject.
	Properties map[string]*Schema
	Required   []string

	// Items applies when Kind is KindArray.
	Items *Schema
}

// StringSchema is a convenience constructor for described string leaves.
func StringSchema(description string) *Schema {
	return &Schema{Kind: KindString, Description: description}
}

// ArraySchema is a convenience constructor for arrays of items.
func ArraySchema(description string, items *Schema) *Schema {
	return &Schema{Kind: KindArray, Description: description, Items: items}
}

// ObjectSchema is a convenience constructor for objects with required fields.
func ObjectSchema(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Kind: KindObject, Properties: properties, Required: required}
}
