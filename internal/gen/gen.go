package gen

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/denom/internal/hashio"
	"github.com/robotomize/denom/internal/logging"
	"github.com/robotomize/denom/internal/strutil"
	"github.com/robotomize/denom/label"
	"golang.org/x/tools/imports"
)

const (
	AssetsDenominationsFile = "denominations.json"
	TableGenFileName        = "table"
	SymbolGenFileName       = "symbol"
	LabelDir                = "label"
	LabelImportPath         = "github.com/robotomize/denom/label"
)

const SuffixGenFileName = "_gen.go"

const (
	tableTemplate  = "table.tmpl"
	symbolTemplate = "symbol.tmpl"
)

var (
	ErrHashingContentEqual = errors.New("hash of the generated file is equivalent to the previous version")
	ErrInvalidEntry        = errors.New("invalid denominations entry")
)

var defaultHasher = hashio.MD5()

var (
	//go:embed templates/*.tmpl
	templates embed.FS
	//go:embed assets
	assets embed.FS
)

var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

type AssetsMapFunc func(b []byte, filename string) error

func ReadAssets(dir string) func(AssetsMapFunc) error {
	return func(mapFunc AssetsMapFunc) error {
		entries, err := assets.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read dir: %w", err)
		}

		for _, entry := range entries {
			b, err := assets.ReadFile(path.Join(dir, entry.Name()))
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			if err := mapFunc(b, entry.Name()); err != nil {
				return fmt.Errorf("call mapFunc: %w", err)
			}
		}

		return nil
	}
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"joinFloats": strutil.JoinFloats,
	}
}

func Template() *template.Template {
	tmpl := template.New("templates").Funcs(Funcs())
	tmpl = template.Must(tmpl.ParseFS(templates, "templates/*.tmpl"))
	return tmpl
}

// Load reads the embedded denominations asset and returns validated entries sorted by code
func Load() ([]Entry, error) {
	var dat Denominations

	if err := ReadAssets("assets")(func(b []byte, filename string) error {
		switch filename {
		case AssetsDenominationsFile:
			if err := json.Unmarshal(b, &dat); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
		default:
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("iterate func: %w", err)
	}

	entries := dat.Entries
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})

	if err := Validate(entries); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return entries, nil
}

// Validate checks entries sorted by code: codes are unique three-letter uppercase symbols
// and values are finite, positive and strictly increasing
func Validate(entries []Entry) error {
	var result *multierror.Error

	for i, entry := range entries {
		if !label.Symbol(entry.Code).Valid() {
			result = multierror.Append(result, fmt.Errorf("%w: code %q", ErrInvalidEntry, entry.Code))
		}

		if i > 0 && entries[i-1].Code == entry.Code {
			result = multierror.Append(result, fmt.Errorf("%w: duplicate code %q", ErrInvalidEntry, entry.Code))
		}

		for kind, values := range map[string][]float64{"notes": entry.Notes, "coins": entry.Coins} {
			for n, v := range values {
				if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || (n > 0 && values[n-1] >= v) {
					result = multierror.Append(
						result,
						fmt.Errorf("%w: %s %s value %v at %d", ErrInvalidEntry, entry.Code, kind, v, n),
					)
					break
				}
			}
		}
	}

	return result.ErrorOrNil()
}

// Generate renders the table and symbol sources into pathTo, the root of the module.
// Files whose content did not change are left untouched and reported with ErrHashingContentEqual
func Generate(ctx context.Context, pathTo string, hasher hashio.Hasher) error {
	logger := logging.FromContext(ctx)

	if hasher == nil {
		hasher = defaultHasher
	}

	entries, err := Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	logger.Debugw("assets loaded", "entries", len(entries))

	data := tableData{
		LabelImportPath: LabelImportPath,
		Entries:         entries,
	}

	var multiErr multierror.Group

	multiErr.Go(func() error {
		fileName := filepath.Join(pathTo, TableGenFileName+SuffixGenFileName)
		if err := generateFile(ctx, fileName, tableTemplate, data, hasher); err != nil {
			return fmt.Errorf("table: %w", err)
		}

		return nil
	})

	multiErr.Go(func() error {
		fileName := filepath.Join(pathTo, LabelDir, SymbolGenFileName+SuffixGenFileName)
		if err := generateFile(ctx, fileName, symbolTemplate, data, hasher); err != nil {
			return fmt.Errorf("symbol: %w", err)
		}

		return nil
	})

	if err := multiErr.Wait().ErrorOrNil(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return nil
}

func generateFile(ctx context.Context, fileName, tmplName string, data interface{}, hasher hashio.Hasher) error {
	logger := logging.FromContext(ctx)

	oldHash, err := hashingFile(fileName, hasher)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("hashingFile: %w", err)
		}
	}

	w := newWriter(bytes.NewBuffer(make([]byte, 0, 4096)), Template())

	if err := w.generate(tmplName, data); err != nil {
		return fmt.Errorf("%s generate error: %w", tmplName, err)
	}

	if err := w.format(fileName); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if len(oldHash) != 0 {
		newHash, err := hashio.ReadAll(bytes.NewReader(w.buf.Bytes()), hasher())
		if err != nil {
			return fmt.Errorf("read generated content: %w", err)
		}

		if bytes.Equal(oldHash, newHash) {
			return fmt.Errorf("warning: %w, file: %s", ErrHashingContentEqual, fileName)
		}
	}

	if err := w.flush(fileName); err != nil {
		return fmt.Errorf("save the generated template to a file: %w", err)
	}

	logger.Infow("file generated", "file", fileName, "bytes", w.buf.Len())

	return nil
}

func hashingFile(fileName string, hasher hashio.Hasher) ([]byte, error) {
	b, err := hashio.ReadFile(os.DirFS(filepath.Dir(fileName)), filepath.Base(fileName), hasher)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return b, nil
}

func newWriter(buf *bytes.Buffer, t *template.Template) *writer {
	return &writer{buf: buf, t: t}
}

type writer struct {
	buf *bytes.Buffer
	t   *template.Template
}

func (w *writer) generate(tmplName string, data interface{}) error {
	if err := w.t.ExecuteTemplate(w.buf, tmplName, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}

// format runs the rendered source through goimports formatting
func (w *writer) format(fileName string) error {
	b, err := imports.Process(fileName, w.buf.Bytes(), formatOptions)
	if err != nil {
		return fmt.Errorf("imports process: %w", err)
	}

	w.buf.Reset()
	w.buf.Write(b)

	return nil
}

func (w *writer) flush(fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := os.WriteFile(fileName, w.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
