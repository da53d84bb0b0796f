package field

// Default palette tokens.
const (
	DefaultAccent  = "#F97316"
	DefaultNeutral = "#6B7280"
)

// Palette is the pair of color tokens used for emphasized and plain fields.
type Palette struct {
	Accent  string
	Neutral string
}

// DefaultPalette returns the built-in orange/gray palette.
func DefaultPalette() Palette {
	return Palette{Accent: DefaultAccent, Neutral: DefaultNeutral}
}

// Visual is what the presentation layer needs to draw a field.
type Visual struct {
	Emphasized bool
	Icon       string
	Color      string
}

// Binding connects a controller to one field of the form state machine.
type Binding interface {
	// Value returns the field's current stored value.
	Value() string
	// Change forwards raw user input. Normalization is the binding's job.
	Change(raw string)
}

// CommitAction names what committing a field does.
type CommitAction string

const (
	CommitNext CommitAction = "next" // advance focus
	CommitDone CommitAction = "done" // submit the form
)

// Controller tracks focus for a single field and derives its visual state.
type Controller struct {
	desc     Descriptor
	binding  Binding
	palette  Palette
	action   CommitAction
	onCommit func()
	focused  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPalette overrides the default palette.
func WithPalette(p Palette) Option {
	return func(c *Controller) { c.palette = p }
}

// WithCommit sets the commit action and the callback invoked by Commit.
func WithCommit(action CommitAction, fn func()) Option {
	return func(c *Controller) {
		c.action = action
		c.onCommit = fn
	}
}

// NewController creates an unfocused controller for a field of type t.
func NewController(t Type, b Binding, opts ...Option) *Controller {
	c := &Controller{
		desc:    Describe(t),
		binding: b,
		palette: DefaultPalette(),
		action:  CommitDone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Descriptor returns the field's static description.
func (c *Controller) Descriptor() Descriptor { return c.desc }

// CommitAction returns what Commit does for this field.
func (c *Controller) CommitAction() CommitAction { return c.action }

// Value returns the bound field's value.
func (c *Controller) Value() string { return c.binding.Value() }

// Focused reports whether the field currently has focus.
func (c *Controller) Focused() bool { return c.focused }

// OnChangeText forwards the raw text, masked or not, to the bound field.
func (c *Controller) OnChangeText(raw string) {
	c.binding.Change(raw)
}

// OnFocus moves the field to the focused state.
func (c *Controller) OnFocus() { c.focused = true }

// OnBlur moves the field to the unfocused state.
func (c *Controller) OnBlur() { c.focused = false }

// Commit runs the commit callback, if one is wired.
func (c *Controller) Commit() {
	if c.onCommit != nil {
		c.onCommit()
	}
}

// VisualState derives the field's look from focus and the bound value.
func (c *Controller) VisualState() Visual {
	emphasized := c.focused || c.binding.Value() != ""
	v := Visual{
		Emphasized: emphasized,
		Icon:       c.desc.Icons.Inactive,
		Color:      c.palette.Neutral,
	}
	if emphasized {
		v.Icon = c.desc.Icons.Active
		v.Color = c.palette.Accent
	}
	return v
}
