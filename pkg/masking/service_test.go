package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactPhoneShapes(t *testing.T) {
	s := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare sg mobile",
			in:   "interested pls msg 91234567 thanks",
			want: "interested pls msg [phone] thanks",
		},
		{
			name: "separated sg mobile",
			in:   "my number is 9123 4567",
			want: "my number is [phone]",
		},
		{
			name: "international",
			in:   "reach us at +65 9123 4567 anytime",
			want: "reach us at [phone] anytime",
		},
		{
			name: "long digit run with separators",
			in:   "acct 1234-5678-9012",
			want: "acct [phone]",
		},
		{
			name: "whatsapp link",
			in:   "chat: wa.me/6591234567",
			want: "chat: [phone]",
		},
		{
			name: "postal codes survive",
			in:   "Tampines 520123, near 529536",
			want: "Tampines 520123, near 529536",
		},
		{
			name: "rates survive",
			in:   "$40-50/hr for Sec 3",
			want: "$40-50/hr for Sec 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Redact(tt.in))
		})
	}
}

func TestContactLineMasker(t *testing.T) {
	s := NewService()

	in := "Sec 3 A Math @ Tampines\nContact: @mary_tuition on telegram\n$40/hr"
	got := s.Redact(in)
	assert.NotContains(t, got, "@mary_tuition")
	assert.Contains(t, got, "Sec 3 A Math @ Tampines")
	assert.Contains(t, got, "$40/hr")
}

func TestRedactPreviewTruncates(t *testing.T) {
	s := NewService()

	raw := strings.Repeat("Sec 3 Math Tampines. ", 60)
	got := s.RedactPreview(raw)
	assert.LessOrEqual(t, len([]rune(got)), previewMaxLen+1)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRedactPreviewClean(t *testing.T) {
	s := NewService()

	got := s.RedactPreview("P5 English, Yishun 760123, $35/hr, contact 81234567")
	assert.NotContains(t, got, "81234567")
	assert.Contains(t, got, "760123")
}

func TestRedactEmpty(t *testing.T) {
	s := NewService()
	assert.Equal(t, "", s.Redact(""))
	assert.Equal(t, "", s.RedactPreview(""))
}
