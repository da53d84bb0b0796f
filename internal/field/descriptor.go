// Package field implements the per-field interaction controller of the
// sign-in screen: focus tracking, the emphasized visual state, and the
// static descriptors of each field type.
package field

import "fmt"

// Type is one of the field kinds the screens know how to render.
type Type string

const (
	Email           Type = "EMAIL"
	Password        Type = "PASSWORD"
	PasswordConfirm Type = "PASSWORD_CONFIRM"
)

// Keyboard is a hint for the input surface.
type Keyboard string

const (
	KeyboardDefault Keyboard = "default"
	KeyboardEmail   Keyboard = "email-address"
)

// IconPair holds the icon identifiers for emphasized and plain rendering.
type IconPair struct {
	Active   string
	Inactive string
}

// Descriptor is the immutable description of a field type.
type Descriptor struct {
	Title       string
	Placeholder string
	Keyboard    Keyboard
	Masked      bool
	Icons       IconPair
}

var lockIcons = IconPair{Active: "lock", Inactive: "lock-outline"}

var descriptors = map[Type]Descriptor{
	Email: {
		Title:       "EMAIL",
		Placeholder: "your@email.com",
		Keyboard:    KeyboardEmail,
		Masked:      false,
		Icons:       IconPair{Active: "email", Inactive: "email-outline"},
	},
	Password: {
		Title:       "PASSWORD",
		Placeholder: "PASSWORD",
		Keyboard:    KeyboardDefault,
		Masked:      true,
		Icons:       lockIcons,
	},
	PasswordConfirm: {
		Title:       "PASSWORD_CONFIRM",
		Placeholder: "PASSWORD CONFIRM",
		Keyboard:    KeyboardDefault,
		Masked:      true,
		Icons:       lockIcons,
	},
}

// Describe returns the descriptor for t. Unknown types panic: they can only
// come from a wiring mistake.
func Describe(t Type) Descriptor {
	d, ok := descriptors[t]
	if !ok {
		panic(fmt.Sprintf("field: unknown type %q", string(t)))
	}
	return d
}

// Types lists every known field type in display order.
func Types() []Type {
	return []Type{Email, Password, PasswordConfirm}
}
