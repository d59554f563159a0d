package settings

import (
	"errors"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

const (
	phoneMaxLen      = 16
	phonePlaceholder = "+254 7..."
)

var errPhoneFormat = errors.New("phone numbers take digits, spaces and a leading '+'")

func newPhoneInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = phonePlaceholder
	in.CharLimit = phoneMaxLen
	in.Validate = validatePhone
	in.Focus()
	return in
}

// validatePhone accepts digits, spaces after the first character and a
// leading '+'.
func validatePhone(s string) error {
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' && i > 0:
		case r == '+' && i == 0:
		default:
			return errPhoneFormat
		}
	}
	return nil
}

func isPhoneKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "backspace", "space":
		return true
	}
	if len(msg.Text) != 1 {
		return false
	}
	c := msg.Text[0]
	return c == '+' || (c >= '0' && c <= '9')
}

// updatePhone feeds msg to the input. The input reports invalid values
// through Err but keeps them, so those edits are rolled back here.
func updatePhone(s *State, msg tea.KeyPressMsg) {
	prev := s.Phone.Value()
	s.Phone, _ = s.Phone.Update(msg)
	if s.Phone.Err != nil {
		s.Phone.SetValue(prev)
		s.Phone.Err = nil
	}
}
