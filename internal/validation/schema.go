package validation

// FieldDef names one descriptor inside a schema.
type FieldDef struct {
	Name  string
	Field Field
}

// Def is a declaration helper for schema literals.
func Def(name string, field Field) FieldDef {
	return FieldDef{Name: name, Field: field}
}

// Schema is an ordered set of named field descriptors fixed at declaration
// time. Schemas are immutable and shared across requests; all mutable state
// lives in the Form a Bind call produces.
type Schema struct {
	defs []FieldDef
}

// NewSchema builds a schema from its field declarations.
func NewSchema(defs ...FieldDef) Schema {
	return Schema{defs: defs}
}

// Bind attaches a raw name->value mapping to the schema. The form starts
// unvalidated; call Validate once, then treat it as read-only.
func (s Schema) Bind(raw map[string]any) *Form {
	return &Form{schema: s, raw: raw, errors: make(map[string]string)}
}

// Form is one schema instance: the supplied values plus the accumulated
// per-field error messages. A form is valid iff the error map is empty.
type Form struct {
	schema Schema
	raw    map[string]any
	errors map[string]string
}

// Validate checks every declared field independently so the caller can
// report all violations at once:
//   - absent and required: "This field is required"
//   - absent and optional: skipped
//   - present, empty, not nullable: "This field can't be blank"
//   - otherwise the descriptor's type rule, message captured per field
//
// Empty values of nullable fields still pass through the descriptor, so a
// nullable phone supplied as "" is rejected on format while a nullable char
// supplied as "" is accepted.
func (f *Form) Validate() {
	for _, def := range f.schema.defs {
		opts := def.Field.Opts()
		value, supplied := f.raw[def.Name]
		if !supplied {
			if opts.Required {
				f.errors[def.Name] = "This field is required"
			}
			continue
		}
		if IsEmpty(value) && !opts.Nullable {
			f.errors[def.Name] = "This field can't be blank"
			continue
		}
		if err := def.Field.Validate(value); err != nil {
			f.errors[def.Name] = err.Error()
		}
	}
}

// Valid reports whether the error map is empty.
func (f *Form) Valid() bool { return len(f.errors) == 0 }

// Errors exposes the accumulated field error messages.
func (f *Form) Errors() map[string]string { return f.errors }

// AddError records a schema-level violation, such as a cross-field rule,
// under a synthetic field name.
func (f *Form) AddError(name, message string) {
	f.errors[name] = message
}

// Has reports whether the field was supplied at all, including explicit
// nulls and empty values. Cross-field rules are presence based.
func (f *Form) Has(name string) bool {
	_, ok := f.raw[name]
	return ok
}

// Present lists the supplied field names in schema declaration order.
func (f *Form) Present() []string {
	names := make([]string, 0, len(f.raw))
	for _, def := range f.schema.defs {
		if f.Has(def.Name) {
			names = append(names, def.Name)
		}
	}
	return names
}

// Value returns the normalized value of a supplied, non-empty field,
// or nil when the field is absent or empty.
func (f *Form) Value(name string) any {
	value, ok := f.raw[name]
	if !ok || IsEmpty(value) {
		return nil
	}
	for _, def := range f.schema.defs {
		if def.Name == name {
			return def.Field.Normalize(value)
		}
	}
	return nil
}
