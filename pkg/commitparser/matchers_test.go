package commitparser

import "testing"

func TestNoteMatcher(t *testing.T) {
	m := Compile(DefaultOptions())

	tests := []struct {
		name      string
		line      string
		wantMatch bool
		wantTitle string
		wantText  string
	}{
		{
			name:      "keyword colon text",
			line:      "BREAKING CHANGE: the config format changed",
			wantMatch: true,
			wantTitle: "BREAKING CHANGE",
			wantText:  "the config format changed",
		},
		{
			name:      "keyword colon no text",
			line:      "BREAKING CHANGE:",
			wantMatch: true,
			wantTitle: "BREAKING CHANGE",
			wantText:  "",
		},
		{
			name:      "bare keyword",
			line:      "BREAKING CHANGE",
			wantMatch: true,
			wantTitle: "BREAKING CHANGE",
			wantText:  "",
		},
		{
			name:      "leading bullet and whitespace",
			line:      "  * BREAKING CHANGE: moved api",
			wantMatch: true,
			wantTitle: "BREAKING CHANGE",
			wantText:  "moved api",
		},
		{
			name:      "lowercase keyword keeps its casing",
			line:      "breaking change: still a note",
			wantMatch: true,
			wantTitle: "breaking change",
			wantText:  "still a note",
		},
		{
			// "BREAKING CHANGES" continues with a word character, so
			// neither the separator nor end-of-line can follow the
			// keyword: no note opens.
			name:      "keyword as prefix of a longer word",
			line:      "BREAKING CHANGES ahead someday",
			wantMatch: false,
		},
		{
			name:      "unrelated line",
			line:      "just a footer line",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Note.FindStringSubmatch(tt.line)
			if (got != nil) != tt.wantMatch {
				t.Fatalf("match = %v, wantMatch = %v", got, tt.wantMatch)
			}
			if got == nil {
				return
			}
			if got[1] != tt.wantTitle {
				t.Errorf("title = %q, want %q", got[1], tt.wantTitle)
			}
			if got[2] != tt.wantText {
				t.Errorf("text = %q, want %q", got[2], tt.wantText)
			}
		})
	}
}

func TestCompileEmptyKeywordLists(t *testing.T) {
	m := Compile(&Options{})

	if m.Note.MatchString("BREAKING CHANGE: x") {
		t.Error("note matcher matched with no keywords configured")
	}
	if m.Action.MatchString("closes #1") {
		t.Error("action matcher matched with no keywords configured")
	}
	if m.Reference.MatchString("#1") {
		t.Error("reference matcher matched with no issue prefixes configured")
	}
}

func TestKeywordAlternationQuoting(t *testing.T) {
	// Keywords are quoted, so regex metacharacters are taken literally.
	m := Compile(&Options{NoteKeywords: []string{"NOTE (IMPORTANT)"}})
	if !m.Note.MatchString("NOTE (IMPORTANT): read me") {
		t.Error("quoted keyword did not match literally")
	}
	if m.Note.MatchString("NOTE IMPORTANT: read me") {
		t.Error("keyword parentheses were treated as a regex group")
	}
}
