package chatlink

import "testing"

func TestLink(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{
			name:  "message with spaces",
			phone: "91XXXXXXXXXX",
			text:  "Hi I would like to book a reading",
			want:  "https://wa.me/91XXXXXXXXXX?text=Hi%20I%20would%20like%20to%20book%20a%20reading",
		},
		{
			name:  "punctuation and apostrophe",
			phone: "+91 98765 43210",
			text:  "Hi I've booked a session & paid?",
			want:  "https://wa.me/919876543210?text=Hi%20I%27ve%20booked%20a%20session%20%26%20paid%3F",
		},
		{
			name:  "unicode",
			phone: "919876543210",
			text:  "Hi I’ve booked",
			want:  "https://wa.me/919876543210?text=Hi%20I%E2%80%99ve%20booked",
		},
		{
			name:  "empty text",
			phone: "919876543210",
			text:  "  ",
			want:  "https://wa.me/919876543210",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Link(tc.phone, tc.text); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
