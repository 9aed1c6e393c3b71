package helper

import "github.com/bytedance/sonic"

// PatchField is a tri-state JSON field for partial updates:
// absent | explicit null | value. Only fields declared on a patch DTO are
// ever merged into a document, so unknown request keys are dropped.
type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

// Get returns the decoded value and whether the field appeared in the body.
func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Apply overwrites dst when the field was present with a non-null value.
func (p PatchField[T]) Apply(dst *T) {
	if p.Present && p.Value != nil {
		*dst = *p.Value
	}
}
