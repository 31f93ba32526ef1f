package importer

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

var jst = time.FixedZone("JST", 9*60*60)

func date(t time.Time) *time.Time { return &t }

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantFM   *FrontMatter
		wantBody string
	}{
		{
			name: "yaml with lists",
			src: "---\n" +
				"title: Haskell notes\n" +
				"date: 2024-01-05\n" +
				"categories: [Programming]\n" +
				"tags:\n  - fp\n  - haskell\n" +
				"---\n" +
				"# Body\n",
			wantFM: &FrontMatter{
				Title:      "Haskell notes",
				Date:       date(time.Date(2024, 1, 5, 0, 0, 0, 0, jst)),
				Categories: []string{"Programming"},
				Tags:       []string{"fp", "haskell"},
			},
			wantBody: "# Body\n",
		},
		{
			name:     "yaml with offset and draft",
			src:      "---\r\ntitle: \"Draft\"\r\ndate: \"2024-01-05T10:00:00+00:00\"\r\ndraft: true\r\ntags: go\r\n---\r\nbody",
			wantFM:   &FrontMatter{Title: "Draft", Date: date(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)), Draft: true, Tags: []string{"go"}},
			wantBody: "body",
		},
		{
			name: "toml",
			src: "+++\n" +
				"title = \"Toml post\"\n" +
				"date = 2023-12-24T20:00:00+09:00\n" +
				"categories = [\"Life\", \" \"]\n" +
				"+++\n" +
				"text\n",
			wantFM: &FrontMatter{
				Title:      "Toml post",
				Date:       date(time.Date(2023, 12, 24, 20, 0, 0, 0, jst)),
				Categories: []string{"Life"},
			},
			wantBody: "text\n",
		},
		{
			name:     "toml local date",
			src:      "+++\ndate = 2023-12-24\n+++\n",
			wantFM:   &FrontMatter{Date: date(time.Date(2023, 12, 24, 0, 0, 0, 0, jst))},
			wantBody: "",
		},
		{
			name:     "empty block",
			src:      "---\n---\nonly body",
			wantFM:   &FrontMatter{},
			wantBody: "only body",
		},
		{
			name:     "no front matter",
			src:      "# Just markdown\n\n---\n",
			wantFM:   &FrontMatter{},
			wantBody: "# Just markdown\n\n---\n",
		},
		{
			name:     "closing delimiter at end of file",
			src:      "---\ntitle: End\n---",
			wantFM:   &FrontMatter{Title: "End"},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			fm, body, err := ParseFrontMatter([]byte(tt.src), jst)
			c.Assert(err, qt.IsNil)
			c.Assert(fm, qt.DeepEquals, tt.wantFM)
			c.Assert(body, qt.Equals, tt.wantBody)
		})
	}
}

func TestParseFrontMatterErrors(t *testing.T) {
	c := qt.New(t)

	_, _, err := ParseFrontMatter([]byte("---\ntitle: open\nbody"), time.UTC)
	c.Assert(err, qt.ErrorIs, ErrUnterminatedFrontMatter)

	_, _, err = ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\n"), time.UTC)
	c.Assert(err, qt.ErrorMatches, "(?s)decode front matter: .*")

	_, _, err = ParseFrontMatter([]byte("---\ndate: someday\n---\n"), time.UTC)
	c.Assert(err, qt.ErrorMatches, "unsupported date someday")
}
