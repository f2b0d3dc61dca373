package pointer

import "testing"

func TestButtonString(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonNone, "none"},
		{ButtonPrimary, "primary"},
		{ButtonSecondary, "secondary"},
		{ButtonAuxiliary, "auxiliary"},
		{ButtonX1, "x1"},
		{ButtonX2, "x2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.button.String(); got != tt.want {
				t.Errorf("Button.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestButtonSetWithWithout(t *testing.T) {
	var s ButtonSet

	s = s.With(ButtonPrimary)
	if !s.Contains(ButtonPrimary) {
		t.Error("With(ButtonPrimary) did not add the button")
	}

	s = s.With(ButtonSecondary)
	if !s.Contains(ButtonPrimary) || !s.Contains(ButtonSecondary) {
		t.Error("With(ButtonSecondary) should keep primary and add secondary")
	}

	s = s.Without(ButtonPrimary)
	if s.Contains(ButtonPrimary) {
		t.Error("Without(ButtonPrimary) did not remove the button")
	}
	if !s.Contains(ButtonSecondary) {
		t.Error("Without(ButtonPrimary) removed an unrelated button")
	}
}

func TestButtonSetIgnoresNone(t *testing.T) {
	var s ButtonSet

	if s = s.With(ButtonNone); !s.IsEmpty() {
		t.Error("With(ButtonNone) modified the set")
	}
	if s.Contains(ButtonNone) {
		t.Error("Contains(ButtonNone) = true, want false")
	}

	s = s.With(ButtonPrimary)
	if got := s.Without(ButtonNone); got != s {
		t.Error("Without(ButtonNone) modified the set")
	}
}

func TestButtonSetString(t *testing.T) {
	tests := []struct {
		set  ButtonSet
		want string
	}{
		{ButtonSet(0), ""},
		{ButtonSet(0).With(ButtonPrimary), "primary"},
		{ButtonSet(0).With(ButtonPrimary).With(ButtonAuxiliary), "primary+auxiliary"},
		{ButtonSet(0).With(ButtonX1).With(ButtonX2), "x1+x2"},
	}

	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("ButtonSet(%d).String() = %q, want %q", tt.set, got, tt.want)
		}
	}
}
