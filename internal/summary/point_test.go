package summary

import "testing"

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Point
		wantErr bool
	}{
		{
			name: "emoji text and reference",
			raw:  "🙏 Dios es fiel (Juan 3:16)",
			want: Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16"},
		},
		{
			name: "no reference",
			raw:  "🔥 La fe mueve montañas",
			want: Point{Emoji: "🔥", Text: "La fe mueve montañas"},
		},
		{
			name: "no emoji",
			raw:  "La palabra permanece (Isaías 40:8)",
			want: Point{Text: "La palabra permanece", Reference: "Isaías 40:8"},
		},
		{
			name: "variation selector emoji",
			raw:  "❤️ Amar al prójimo",
			want: Point{Emoji: "❤️", Text: "Amar al prójimo"},
		},
		{
			name: "inner parentheses kept in text",
			raw:  "🙏 Orar (siempre) con fe",
			want: Point{Emoji: "🙏", Text: "Orar (siempre) con fe"},
		},
		{
			name: "nested parentheses in reference",
			raw:  "🙏 Dios es fiel (Juan 3:16 (LBLA))",
			want: Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16 (LBLA)"},
		},
		{
			name: "unbalanced trailing paren stays in text",
			raw:  "La promesa se cumple Juan 3:16)",
			want: Point{Text: "La promesa se cumple Juan 3:16)"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  🙏  Dios es fiel  (Juan 3:16)  ",
			want: Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16"},
		},
		{
			name:    "only emoji",
			raw:     "🙏",
			wantErr: true,
		},
		{
			name:    "only reference",
			raw:     "(Juan 3:16)",
			wantErr: true,
		},
		{
			name:    "blank",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePoint(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPointLine(t *testing.T) {
	tests := []struct {
		point Point
		want  string
	}{
		{Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16"}, "🙏 Dios es fiel (Juan 3:16)"},
		{Point{Emoji: "🔥", Text: "La fe"}, "🔥 La fe"},
		{Point{Text: "Sin emoji", Reference: "Salmos 23:1"}, "Sin emoji (Salmos 23:1)"},
	}

	for _, tt := range tests {
		if got := tt.point.Line(); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestPointLineRoundTrip(t *testing.T) {
	original := Point{Emoji: "🙏", Text: "Dios es fiel", Reference: "Juan 3:16"}
	parsed, err := ParsePoint(original.Line())
	if err != nil {
		t.Fatalf("ParsePoint() error = %v", err)
	}
	if parsed != original {
		t.Errorf("round trip = %+v, want %+v", parsed, original)
	}
}
