package scene

import "unicode"

type Field int

const (
	FieldFirst Field = iota
	FieldSecond
	FieldZeros
	fieldCount

	// NoField means no text field has keyboard focus.
	NoField Field = -1
)

var fieldLabels = [fieldCount]string{
	FieldFirst:  "First Signal",
	FieldSecond: "Second Signal",
	FieldZeros:  "Number of Padded Zeros",
}

const maxFieldLen = 96

// Form holds the text of the three input fields.
type Form struct {
	values [fieldCount]string
	focus  Field
}

func NewForm() *Form {
	return &Form{focus: NoField}
}

func (f *Form) Label(field Field) string { return fieldLabels[field] }

func (f *Form) Value(field Field) string { return f.values[field] }

func (f *Form) SetValue(field Field, v string) {
	if len(v) > maxFieldLen {
		v = v[:maxFieldLen]
	}
	f.values[field] = v
}

func (f *Form) Focus() Field { return f.focus }

func (f *Form) SetFocus(field Field) {
	if field < NoField || field >= fieldCount {
		field = NoField
	}
	f.focus = field
}

// NextFocus moves focus to the next field, wrapping around.
func (f *Form) NextFocus() {
	f.focus = (f.focus + 1) % fieldCount
}

// Type appends accepted runes to the focused field. Signals take digits,
// signs, commas and spaces; the padding field takes digits only.
func (f *Form) Type(runes []rune) {
	if f.focus == NoField {
		return
	}
	v := f.values[f.focus]
	for _, r := range runes {
		if !f.accepts(r) || len(v) >= maxFieldLen {
			continue
		}
		v += string(r)
	}
	f.values[f.focus] = v
}

// Backspace removes the last character of the focused field.
func (f *Form) Backspace() {
	if f.focus == NoField {
		return
	}
	v := f.values[f.focus]
	if v == "" {
		return
	}
	f.values[f.focus] = v[:len(v)-1]
}

func (f *Form) accepts(r rune) bool {
	if unicode.IsDigit(r) && r < unicode.MaxASCII {
		return true
	}
	if f.focus == FieldZeros {
		return false
	}
	switch r {
	case ',', '-', '+', ' ':
		return true
	}
	return false
}

func Fields() []Field {
	return []Field{FieldFirst, FieldSecond, FieldZeros}
}
