package domain

import "strings"

// FieldKind is the value kind of a team-defined field.
type FieldKind string

const (
	FieldKindText FieldKind = "text"
	FieldKindDate FieldKind = "date"
)

func (k FieldKind) String() string { return string(k) }

func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindText, FieldKindDate:
		return true
	}
	return false
}

// Field is a team-scoped schema entry describing one custom sample attribute.
type Field struct {
	TeamName    string
	Name        string
	DisplayName string
	Kind        FieldKind
	Position    int
}

// EffectiveKind returns the explicit kind when set, otherwise the kind
// inferred from the name.
func (f Field) EffectiveKind() FieldKind {
	if f.Kind.IsValid() {
		return f.Kind
	}
	return InferKind(f.Name)
}

// InferKind applies the legacy naming convention: names containing "date"
// hold dates. Only used for rows stored before kind became a column.
func InferKind(name string) FieldKind {
	if strings.Contains(name, "date") {
		return FieldKindDate
	}
	return FieldKindText
}
