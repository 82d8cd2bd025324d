package icongen

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Icon is one entry of an icon table: the label drawn on the canvas and the
// destination name the file is written under, without extension.
type Icon struct {
	Label string `toml:"label"`
	Name  string `toml:"name"`
}

// Table is an ordered list of icons. Generation follows table order.
type Table []Icon

// tableFile is the TOML layout of a table document.
type tableFile struct {
	Icons Table `toml:"icons"`
}

//go:embed icons.toml
var defaultTableTOML []byte

var defaultTable = sync.OnceValue(func() Table {
	t, err := LoadTable(bytes.NewReader(defaultTableTOML))
	if err != nil {
		panic(fmt.Sprintf("icongen: embedded icon table: %v", err))
	}
	return t
})

// DefaultTable returns a copy of the built-in icon table.
func DefaultTable() Table {
	t := defaultTable()
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// LoadTable decodes a TOML icon table:
//
//	[[icons]]
//	label = "M"
//	name = "music"
//
// Unknown keys are rejected. Labels and names are taken as written.
func LoadTable(r io.Reader) (Table, error) {
	var f tableFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("icongen: decode icon table: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("icongen: unknown keys in icon table: %s", strings.Join(keys, ", "))
	}
	if len(f.Icons) == 0 {
		return nil, ErrEmptyTable
	}
	return f.Icons, nil
}

// LoadTableFile reads a TOML icon table from path.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("icongen: open icon table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadTable(f)
}

// WriteTable encodes t in the format LoadTable reads.
func WriteTable(w io.Writer, t Table) error {
	if err := toml.NewEncoder(w).Encode(tableFile{Icons: t}); err != nil {
		return fmt.Errorf("icongen: encode icon table: %w", err)
	}
	return nil
}

// Names returns the destination names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, ic := range t {
		names[i] = ic.Name
	}
	return names
}
