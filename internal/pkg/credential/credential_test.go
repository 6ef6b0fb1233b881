package credential

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "Simple", input: "user@example.com", valid: true},
		{name: "Subdomain", input: "first.last@mail.example.co.id", valid: true},
		{name: "PlusTag", input: "user+tag@example.io", valid: true},
		{name: "Empty", input: "", valid: false},
		{name: "DoubleAt", input: "user@@example", valid: false},
		{name: "NoTLD", input: "user@example", valid: false},
		{name: "NoLocalPart", input: "@example.com", valid: false},
		{name: "SpaceInLocalPart", input: "us er@example.com", valid: false},
		{name: "TrailingSpace", input: "user@example.com ", valid: false},
		{name: "AtInDomain", input: "user@exa@mple.com", valid: false},
		{name: "EmptyTLD", input: "user@example.", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateEmail(tt.input)

			assert.Equal(t, tt.valid, got.Valid())
			if tt.valid {
				assert.Empty(t, got.Message())
				assert.NoError(t, got.Err())
			} else {
				assert.Equal(t, MsgInvalidEmail, got.Message())
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Valid", input: "Secret123!", want: ""},
		{name: "ValidOnlySymbolAndLetters", input: "abcdEFG{", want: ""},
		{name: "Empty", input: "", want: MsgPasswordLength},
		{name: "LengthBeforeLowercase", input: "ab", want: MsgPasswordLength},
		{name: "SevenChars", input: "Abcde!1", want: MsgPasswordLength},
		{name: "NoLowercase", input: "ABCDEFG1!", want: MsgPasswordLowercase},
		{name: "NoUppercase", input: "abcdefg1!", want: MsgPasswordUppercase},
		{name: "NoSymbol", input: "Abcdefg12", want: MsgPasswordSymbol},
		{name: "SymbolOutsideSet", input: "Abcdefg_-", want: MsgPasswordSymbol},
		{name: "DigitsOnly", input: "12345678", want: MsgPasswordLowercase},
		{name: "MultiByteCountsAsOne", input: "Ábcdéf!", want: MsgPasswordLength},
		// astral characters count once each, so seven runes stay short
		{name: "AstralRunesCountOnce", input: "Ab!\U0001F600\U0001F600\U0001F600x", want: MsgPasswordLength},
		{name: "EightRunesWithAstral", input: "Ab!\U0001F600\U0001F600\U0001F600xy", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePassword(tt.input)

			assert.Equal(t, tt.want, got.Message())
			assert.Equal(t, tt.want == "", got.Valid())
		})
	}
}

// Valid iff len>=8 and it has a lowercase, an uppercase and a symbol.
func TestValidatePassword_Property(t *testing.T) {
	alphabet := []string{"a", "Z", "1", "!", "?", " ", "_"}

	var gen func(prefix string, depth int)
	gen = func(prefix string, depth int) {
		if depth == 0 {
			want := len(prefix) >= MinPasswordLength &&
				strings.ContainsAny(prefix, "abcdefghijklmnopqrstuvwxyz") &&
				strings.ContainsAny(prefix, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
				strings.ContainsAny(prefix, PasswordSymbols)
			if got := ValidatePassword(prefix).Valid(); got != want {
				t.Fatalf("ValidatePassword(%q).Valid() = %v, want %v", prefix, got, want)
			}
			return
		}
		for _, c := range alphabet {
			gen(prefix+c, depth-1)
		}
		gen(prefix, 0)
	}

	gen("xY", 4)
	gen("Pass", 4)
}

func TestValidatePassword_Idempotent(t *testing.T) {
	for _, in := range []string{"", "ab", "Secret123!", "abcdefgh"} {
		assert.Equal(t, ValidatePassword(in), ValidatePassword(in))
	}
}

func TestResult_Err(t *testing.T) {
	err := ValidatePassword("ab").Err()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.TypeValidation, gerr.Type())
	assert.Equal(t, MsgPasswordLength, gerr.Msg())
}

func TestSubmitEnabled(t *testing.T) {
	bad := ValidateEmail("nope").Message()

	assert.True(t, SubmitEnabled("", "user@example.com", "Secret123!"))
	assert.False(t, SubmitEnabled("", "user@example.com", ""))
	assert.False(t, SubmitEnabled(bad, "user@example.com", "Secret123!"))
	assert.False(t, SubmitEnabled("Invalid Credentials", "user@example.com", "Secret123!"))
	assert.True(t, SubmitEnabled(""))
}
