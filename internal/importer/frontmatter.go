package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnterminatedFrontMatter is returned when an opening delimiter has
// no closing line.
var ErrUnterminatedFrontMatter = errors.New("front matter is not terminated")

// FrontMatter is the metadata block at the top of a markdown file.
type FrontMatter struct {
	Title      string
	Date       *time.Time
	Draft      bool
	Categories []string
	Tags       []string
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseFrontMatter splits src into its front matter and body. YAML is
// delimited by "---" lines and TOML by "+++" lines. A file without a
// delimiter on its first line is all body. Dates without an offset are
// read in loc.
func ParseFrontMatter(src []byte, loc *time.Location) (*FrontMatter, string, error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	var delim string
	switch {
	case strings.HasPrefix(text, "---\n"):
		delim = "---"
	case strings.HasPrefix(text, "+++\n"):
		delim = "+++"
	default:
		return &FrontMatter{}, text, nil
	}

	rest := text[len(delim)+1:]
	var head, body string
	if strings.HasPrefix(rest, delim+"\n") || rest == delim {
		body = strings.TrimPrefix(strings.TrimPrefix(rest, delim), "\n")
	} else {
		end := strings.Index(rest, "\n"+delim+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+delim) {
				return nil, "", ErrUnterminatedFrontMatter
			}
			end = len(rest) - len(delim) - 1
		}
		head = rest[:end]
		body = strings.TrimPrefix(rest[end+1+len(delim):], "\n")
	}

	raw := map[string]interface{}{}
	if strings.TrimSpace(head) != "" {
		var err error
		if delim == "---" {
			err = yaml.Unmarshal([]byte(head), &raw)
		} else {
			err = toml.Unmarshal([]byte(head), &raw)
		}
		if err != nil {
			return nil, "", fmt.Errorf("decode front matter: %w", err)
		}
	}

	fm, err := fromMap(raw, loc)
	if err != nil {
		return nil, "", err
	}
	return fm, body, nil
}

func fromMap(raw map[string]interface{}, loc *time.Location) (*FrontMatter, error) {
	fm := &FrontMatter{}
	if v, ok := raw["title"]; ok {
		fm.Title = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := raw["draft"].(bool); ok {
		fm.Draft = v
	}
	if v, ok := raw["date"]; ok && v != nil {
		t, err := parseDate(v, loc)
		if err != nil {
			return nil, err
		}
		fm.Date = &t
	}
	fm.Categories = stringList(raw["categories"])
	fm.Tags = stringList(raw["tags"])
	return fm, nil
}

func parseDate(v interface{}, loc *time.Location) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case toml.LocalDateTime:
		return d.AsTime(loc), nil
	case toml.LocalDate:
		return d.AsTime(loc), nil
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %v", v)
}

// stringList accepts a list or a single value and drops blanks.
func stringList(v interface{}) []string {
	var items []interface{}
	switch x := v.(type) {
	case nil:
		return nil
	case []interface{}:
		items = x
	case []string:
		for _, s := range x {
			items = append(items, s)
		}
	default:
		items = []interface{}{x}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
