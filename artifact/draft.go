package artifact

// SampleMessage is a well-formed MT940 statement used to seed the input.
const SampleMessage = "{1:F01BANKDEFFXXXX0000000000}{2:I940BANKDEFFXXXXN}{3:{108:TEST123456789}}{4:\n" +
	":20:REFERENCE123\n" +
	":25:12345678\n" +
	":28C:12345,00\n" +
	":60F:C160101EUR1234,56\n" +
	":61F:160101EUR1234,56\n" +
	":86:Account Details\n" +
	":62F:C160101EUR2469,12\n" +
	":64:C160101EUR1234,56\n" +
	"-}"

// LoadSample replaces the draft with SampleMessage.
func LoadSample(s Surfaces) {
	LoadText(s, SampleMessage)
}

// LoadText replaces the draft with text, such as the content of a file.
func LoadText(s Surfaces, text string) {
	if s.Input == nil {
		return
	}
	s.Input.SetText(text)
}

// ClearInput empties the draft.
func ClearInput(s Surfaces) {
	if s.Input == nil {
		return
	}
	s.Input.SetText("")
}

// ResetForm restores the composer form, or the validator form when no
// composer is present.
func ResetForm(s Surfaces) {
	switch {
	case s.Composer != nil:
		s.Composer.Reset()
	case s.Validator != nil:
		s.Validator.Reset()
	}
}
