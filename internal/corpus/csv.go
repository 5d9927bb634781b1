// Package corpus reads the cocktail corpus from its CSV export. The export
// carries ingredient and measure columns as Python-style list literals, which
// are parsed into structured records.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

// Config holds corpus ingestion settings.
type Config struct {
	Path string `env:"CORPUS_PATH" envDefault:"data/cocktails.csv"`
}

var requiredColumns = []string{"id", "name", "instructions", "ingredients"}

// ReadFile parses the cocktail CSV file at path.
func ReadFile(path string) ([]*domain.Cocktail, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses cocktail records from CSV content.
func Read(r io.Reader) ([]*domain.Cocktail, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("corpus is missing column %q", required)
		}
	}

	var cocktails []*domain.Cocktail
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read corpus row: %w", readErr)
		}

		cocktail, rowErr := parseRow(columns, record)
		if rowErr != nil {
			return nil, rowErr
		}
		cocktails = append(cocktails, cocktail)
	}

	return cocktails, nil
}

func parseRow(columns map[string]int, record []string) (*domain.Cocktail, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	names := parseListLiteral(field("ingredients"))
	measures := parseListLiteral(field("ingredientMeasures"))

	ingredients := make([]domain.Ingredient, 0, len(names))
	for i, name := range names {
		if name == "" || strings.EqualFold(name, "none") {
			continue
		}
		ing := domain.Ingredient{Name: strings.ToLower(name)}
		if i < len(measures) && !strings.EqualFold(measures[i], "none") {
			ing.Measure = measures[i]
		}
		ingredients = append(ingredients, ing)
	}

	if field("id") == "" || field("name") == "" {
		return nil, fmt.Errorf("corpus row missing id or name: %v", record)
	}

	return &domain.Cocktail{
		ID:           field("id"),
		Name:         titleCase(field("name")),
		Alcoholic:    strings.EqualFold(field("alcoholic"), "alcoholic"),
		Category:     field("category"),
		GlassType:    field("glassType"),
		Instructions: field("instructions"),
		ThumbnailURL: field("drinkThumbnail"),
		Tags:         dropNone(parseListLiteral(field("tags"))),
		Ingredients:  ingredients,
	}, nil
}

func dropNone(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if !strings.EqualFold(item, "none") {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// titleCase capitalizes each word of a cocktail name.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// parseListLiteral decodes a Python-style list literal such as
// ['Tequila', 'Triple sec', "Lime juice"]. None entries are kept verbatim so
// positional alignment with a sibling list survives; callers filter them.
func parseListLiteral(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	s = s[1 : len(s)-1]

	var (
		items   []string
		current strings.Builder
		quote   rune
	)

	flush := func() {
		item := strings.TrimSpace(current.String())
		current.Reset()
		if item != "" {
			items = append(items, item)
		}
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return items
}
