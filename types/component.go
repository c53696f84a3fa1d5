package types

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// ComponentID is the stable small-integer index assigned to a component type
// at first use. The index space is shared across the whole process; 0 is
// reserved and never assigned.
type ComponentID int32

// ComponentMetadata describes a registered component type. It is created
// once per type by the registry and is immutable afterwards.
type ComponentMetadata struct {
	id     ComponentID
	name   string
	rtype  reflect.Type
	schema []byte
}

// NewComponentMetadata builds the metadata for a component type, including
// its JSON schema. The schema is used by serialization collaborators to
// detect drift between saved state and the currently registered type.
func NewComponentMetadata(id ComponentID, rtype reflect.Type) (*ComponentMetadata, error) {
	schema, err := jsonschema.ReflectFromType(rtype).MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return &ComponentMetadata{
		id:     id,
		name:   rtype.String(),
		rtype:  rtype,
		schema: schema,
	}, nil
}

// ID returns the component type index.
func (m *ComponentMetadata) ID() ComponentID {
	return m.id
}

// Name returns the component type name.
func (m *ComponentMetadata) Name() string {
	return m.name
}

// Type returns the underlying Go type.
func (m *ComponentMetadata) Type() reflect.Type {
	return m.rtype
}

// Schema returns the JSON schema captured at registration.
func (m *ComponentMetadata) Schema() []byte {
	return m.schema
}

// String returns the component type name.
func (m *ComponentMetadata) String() string {
	return m.name
}

// IsSchemaValid reports whether two JSON schemas describe the same shape.
func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
