// pkg/source/xml.go
package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/config"
	"github.com/peopleops/hr-insights/pkg/model"
)

// XMLLoader reads source tables from row-oriented XML exports:
//
//	<data>
//	  <row><employee_office_id>4</employee_office_id>...</row>
//	  ...
//	</data>
//
// Row element and column element names are taken as-is; cell text is
// type-inferred (int, float, bool, string).
type XMLLoader struct {
	dir     string
	files   map[string]string
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewXMLLoader creates an XML file loader for the configured data
// directory. When a fetcher is supplied, missing files are downloaded
// before the first load.
func NewXMLLoader(cfg *config.Config, fetcher *Fetcher) *XMLLoader {
	return &XMLLoader{
		dir: cfg.DataDir,
		files: map[string]string{
			OfficeA: cfg.OfficeAFile,
			OfficeB: cfg.OfficeBFile,
			HR:      cfg.HRFile,
		},
		fetcher: fetcher,
		logger:  zap.L().Named("xml-loader"),
	}
}

// Load parses the XML file backing a logical source name.
func (l *XMLLoader) Load(ctx context.Context, name string) (*model.Table, error) {
	filename, ok := l.files[name]
	if !ok {
		return nil, fmt.Errorf("unknown source name: %s", name)
	}

	path := filepath.Join(l.dir, filename)
	if l.fetcher != nil {
		if err := l.fetcher.Ensure(ctx, l.dir, filename); err != nil {
			return nil, fmt.Errorf("failed to ensure source file %s: %w", filename, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer f.Close()

	table, err := parseRowXML(name, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	l.logger.Info("Loaded source table",
		zap.String("source", name),
		zap.String("file", filename),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns())))

	return table, nil
}

// Close is a no-op; the loader holds no persistent resources.
func (l *XMLLoader) Close() error {
	return nil
}

// parseRowXML stream-decodes a row-oriented XML document into a table.
// The column set is the union of column elements seen, in first-seen
// order, so a row missing a trailing column still parses.
func parseRowXML(name string, r io.Reader) (*model.Table, error) {
	decoder := xml.NewDecoder(r)

	var (
		rows     []model.Row
		columns  []string
		seenCols = make(map[string]bool)
		depth    int
		current  model.Row
		cell     string
		cellName string
		inCell   bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml decode error: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 2:
				current = make(model.Row)
			case 3:
				cellName = el.Name.Local
				cell = ""
				inCell = true
				if !seenCols[cellName] {
					seenCols[cellName] = true
					columns = append(columns, cellName)
				}
			}
		case xml.CharData:
			if inCell {
				cell += string(el)
			}
		case xml.EndElement:
			switch depth {
			case 2:
				if current != nil {
					rows = append(rows, current)
					current = nil
				}
			case 3:
				if current != nil {
					current[cellName] = inferValue(cell)
				}
				inCell = false
			}
			depth--
		}
	}

	table := model.NewTable(name, columns)
	for _, row := range rows {
		table.Append(row)
	}
	return table, nil
}

// inferValue types a text cell: int64, then float64, then bool, else
// the trimmed string.
func inferValue(s string) model.Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(trimmed); err == nil {
		return b
	}
	return trimmed
}
