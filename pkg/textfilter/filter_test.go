package textfilter

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean name passes through",
			input: "Hero",
			want:  "Hero",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Sir Galahad ",
			want:  "Sir Galahad",
		},
		{
			name:  "inner whitespace collapsed",
			input: "Sir   Galahad",
			want:  "Sir Galahad",
		},
		{
			name:  "lowercase profanity replaced",
			input: "damn knight",
			want:  "dang knight",
		},
		{
			name:  "title case preserved",
			input: "Damn Knight",
			want:  "Dang Knight",
		},
		{
			name:  "upper case preserved",
			input: "DAMN",
			want:  "DANG",
		},
		{
			name:  "embedded word left alone",
			input: "Cassandra",
			want:  "Cassandra",
		},
		{
			name:  "boundary respected mid-name",
			input: "Helluva",
			want:  "Helluva",
		},
		{
			name:  "empty stays empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeName(tc.input); got != tc.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestContainsProfanity(t *testing.T) {
	if ContainsProfanity("Hero") {
		t.Error("expected clean name to pass")
	}
	if ContainsProfanity("Cassandra") {
		t.Error("word boundaries should protect embedded matches")
	}
	if !ContainsProfanity("damn hero") {
		t.Error("expected profanity to be detected")
	}
	if !ContainsProfanity("DaMn") {
		t.Error("expected detection to ignore case")
	}
}
