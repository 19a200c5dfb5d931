package brokerbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File names of the three durable collections inside the data directory.
const (
	clientsFile  = "clients.json"
	tradesFile   = "trades.jsonl"
	holdingsFile = "holdings.json"
)

// DirStore persists the book's three collections as files in a directory.
// Each mutating operation rewrites all three files, each written to a
// temporary file first and renamed into place, so a reload always
// reconstructs an equivalent in-memory state.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. The directory is created on the
// first save.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

// Dir returns the data directory.
func (s *DirStore) Dir() string { return s.dir }

// Load reads the three collections. A missing file yields an empty
// collection, as on first use. Holdings present while the ledger is empty
// indicate a corrupt data directory and fail the load.
func (s *DirStore) Load() (clients map[string]Client, trades []Trade, holdings map[string]map[string]int64, err error) {
	clients = make(map[string]Client)
	trades = make([]Trade, 0)
	holdings = make(map[string]map[string]int64)

	if err := load(filepath.Join(s.dir, clientsFile), &clients, DecodeClients); err != nil {
		return nil, nil, nil, err
	}
	if err := load(filepath.Join(s.dir, tradesFile), &trades, DecodeTrades); err != nil {
		return nil, nil, nil, err
	}
	if err := load(filepath.Join(s.dir, holdingsFile), &holdings, DecodeHoldings); err != nil {
		return nil, nil, nil, err
	}

	if len(trades) == 0 && anyHolding(holdings) {
		return nil, nil, nil, fmt.Errorf("%s has holdings but %s is empty: data directory %q is corrupt", holdingsFile, tradesFile, s.dir)
	}
	return clients, trades, holdings, nil
}

// Save durably rewrites the three collections together. Never one without
// the others: a partial write would break the holdings reconciliation
// invariant on reload.
func (s *DirStore) Save(clients map[string]Client, trades []Trade, holdings map[string]map[string]int64) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	if err := write(filepath.Join(s.dir, clientsFile), clients, EncodeClients); err != nil {
		return err
	}
	if err := write(filepath.Join(s.dir, tradesFile), trades, EncodeTrades); err != nil {
		return err
	}
	return write(filepath.Join(s.dir, holdingsFile), holdings, EncodeHoldings)
}

// load decodes one collection file into out. A missing file is not an
// error, the collection simply starts empty.
func load[T any](path string, out *T, decode func(io.Reader) (T, error)) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return fmt.Errorf("could not load %q: %w", path, err)
	}
	*out = v
	return nil
}

// write encodes one collection to a temporary file and renames it into place.
func write[T any](path string, v T, encode func(io.Writer, T) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if err := encode(tmp, v); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}

func anyHolding(holdings map[string]map[string]int64) bool {
	for _, positions := range holdings {
		if len(positions) > 0 {
			return true
		}
	}
	return false
}
