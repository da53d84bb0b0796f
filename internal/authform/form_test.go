package authform

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	f := New()

	want := State{Email: "", Password: "", Disabled: true, Loading: false}
	if got := f.State(); got != want {
		t.Errorf("New().State() = %+v, want %+v", got, want)
	}
}

func TestUpdateField_Trims(t *testing.T) {
	f := New()
	f.UpdateField(Email, "  a@b.com  ")

	if got := f.State().Email; got != "a@b.com" {
		t.Errorf("Email = %q, want %q", got, "a@b.com")
	}

	f.UpdateField(Password, "\tsecret\n")
	if got := f.Value(Password); got != "secret" {
		t.Errorf("Value(Password) = %q, want %q", got, "secret")
	}
}

func TestUpdateField_DisabledInvariant(t *testing.T) {
	type step struct {
		name FieldName
		raw  string
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name:  "email only",
			steps: []step{{Email, "a@b.com"}},
		},
		{
			name:  "both fields",
			steps: []step{{Email, "a@b.com"}, {Password, "secret"}},
		},
		{
			name:  "password first",
			steps: []step{{Password, "secret"}, {Email, "a@b.com"}},
		},
		{
			name:  "cleared after fill",
			steps: []step{{Email, "a@b.com"}, {Password, "secret"}, {Email, ""}},
		},
		{
			name:  "whitespace only counts as empty",
			steps: []step{{Email, "a@b.com"}, {Password, "    "}},
		},
		{
			name:  "refill",
			steps: []step{{Email, "x"}, {Password, "y"}, {Password, ""}, {Password, "z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			for i, s := range tt.steps {
				f.UpdateField(s.name, s.raw)
				st := f.State()
				want := st.Email == "" || st.Password == ""
				if st.Disabled != want {
					t.Fatalf("after step %d (%s=%q): Disabled = %v, want %v", i, s.name, s.raw, st.Disabled, want)
				}
			}
		})
	}
}

func TestUpdateField_OrderDoesNotMatter(t *testing.T) {
	a := New()
	a.UpdateField(Email, "a@b.com")
	a.UpdateField(Password, "secret")

	b := New()
	b.UpdateField(Password, "secret")
	b.UpdateField(Email, "a@b.com")

	if a.State() != b.State() {
		t.Errorf("states differ: %+v vs %+v", a.State(), b.State())
	}
}

func TestUpdateField_LeavesLoadingAlone(t *testing.T) {
	f := New()
	f.UpdateField(Email, "a@b.com")
	f.UpdateField(Password, "secret")
	if !f.BeginSubmit() {
		t.Fatal("BeginSubmit() = false, want true")
	}

	f.UpdateField(Password, "")
	st := f.State()
	if !st.Loading {
		t.Error("UpdateField cleared Loading")
	}
	if st.Email != "a@b.com" {
		t.Errorf("UpdateField(Password) changed Email to %q", st.Email)
	}
}

func TestUpdateField_UnknownFieldPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("UpdateField with unknown field did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "username") {
			t.Errorf("panic = %v, want message naming the field", r)
		}
	}()

	New().UpdateField(FieldName("username"), "bob")
}

func TestReset_Idempotent(t *testing.T) {
	f := New()
	f.UpdateField(Email, "a@b.com")
	f.UpdateField(Password, "secret")
	f.BeginSubmit()

	f.Reset()
	once := f.State()
	f.Reset()
	twice := f.State()

	if once != Initial() {
		t.Errorf("after Reset() = %+v, want %+v", once, Initial())
	}
	if once != twice {
		t.Errorf("second Reset() = %+v, want %+v", twice, once)
	}
}

func TestBeginSubmit_Guard(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		loading  bool
		want     bool
	}{
		{name: "empty form", want: false},
		{name: "email only", email: "a@b.com", want: false},
		{name: "password only", password: "secret", want: false},
		{name: "complete", email: "a@b.com", password: "secret", want: true},
		{name: "already loading", email: "a@b.com", password: "secret", loading: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.UpdateField(Email, tt.email)
			f.UpdateField(Password, tt.password)
			if tt.loading {
				f.BeginSubmit()
			}
			before := f.State()

			got := f.BeginSubmit()
			if got != tt.want {
				t.Errorf("BeginSubmit() = %v, want %v", got, tt.want)
			}
			if !got && f.State() != before {
				t.Errorf("failed BeginSubmit() changed state from %+v to %+v", before, f.State())
			}
		})
	}
}

func TestBeginSubmit_Twice(t *testing.T) {
	f := New()
	f.UpdateField(Email, "a@b.com")
	f.UpdateField(Password, "secret")

	first := f.BeginSubmit()
	second := f.BeginSubmit()

	if !first || second {
		t.Errorf("BeginSubmit() twice = (%v, %v), want (true, false)", first, second)
	}
	if !f.State().Loading {
		t.Error("Loading = false after BeginSubmit, want true")
	}
}

func TestEndSubmit(t *testing.T) {
	f := New()
	f.UpdateField(Email, "a@b.com")
	f.UpdateField(Password, "secret")
	f.BeginSubmit()
	f.EndSubmit()

	want := State{Email: "a@b.com", Password: "secret", Disabled: false, Loading: false}
	if got := f.State(); got != want {
		t.Errorf("after EndSubmit() = %+v, want %+v", got, want)
	}
	if !f.CanSubmit() {
		t.Error("CanSubmit() = false after EndSubmit, want true")
	}

	// Unconditional: harmless when nothing is in flight.
	f.EndSubmit()
	if f.State().Loading {
		t.Error("EndSubmit() set Loading")
	}
}

func TestState_StringHidesPassword(t *testing.T) {
	s := State{Email: "a@b.com", Password: "hunter2"}
	if strings.Contains(s.String(), "hunter2") {
		t.Errorf("State.String() = %q leaks the password", s.String())
	}
}
