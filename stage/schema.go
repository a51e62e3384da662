package stage

import "github.com/invopop/jsonschema"

// Schema reflects the JSON Schema authors validate descriptors against
// Unknown fields stay allowed so editor metadata survives
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(new(Descriptor))
	s.Title = "Hell Escape Stage"
	s.Description = "Stage descriptor loaded as maps/Stage{n}.json; platforms are required, every other field is optional"
	return s
}
