package slug

import "testing"

func TestGenerate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tap Away", "tap-away"},
		{"  Tap   Away  ", "tap-away"},
		{"snake_case_title", "snake-case-title"},
		{"Hello, World!", "hello-world"},
		{"UPPER", "upper"},
		{"100% Orange Juice", "100-orange-juice"},
		{"--already--slugged--", "already-slugged"},
		{"???", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := Generate(c.in); got != c.want {
			t.Errorf("Generate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{"Tap Away", "snake_case_title", "Hello, World!", "a--b"}
	for _, in := range inputs {
		once := Generate(in)
		if twice := Generate(once); twice != once {
			t.Errorf("Generate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	existing := map[string]bool{
		"tap-away":   true,
		"tap-away-1": true,
	}

	if got := GenerateUnique("Tap Away", existing); got != "tap-away-2" {
		t.Errorf("expected tap-away-2, got %q", got)
	}
	if got := GenerateUnique("Fresh Title", existing); got != "fresh-title" {
		t.Errorf("expected fresh-title, got %q", got)
	}
}

func TestGenerateUniqueEmptyFallsBackToGame(t *testing.T) {
	if got := GenerateUnique("???", nil); got != "game" {
		t.Errorf("expected game, got %q", got)
	}
	if got := GenerateUnique("???", map[string]bool{"game": true}); got != "game-1" {
		t.Errorf("expected game-1, got %q", got)
	}
}
