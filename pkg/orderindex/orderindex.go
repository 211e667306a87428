// Package orderindex keeps the buyer-side list of order ids created on this
// device. The list is advisory: it is never validated against the server and
// losing it loses nothing but the convenience of re-finding an order without
// its id.
package orderindex

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"vipshop-backend/entity"
)

// Resolver fetches current order snapshots for a set of ids. Results come
// back in database order and unknown ids are simply absent.
type Resolver interface {
	Resolve(ctx context.Context, ids []string) ([]entity.Order, error)
}

// Index is a file-backed, most-recent-first id list.
type Index struct {
	path     string
	resolver Resolver
}

func New(path string, resolver Resolver) *Index {
	return &Index{path: path, resolver: resolver}
}

// DefaultPath places the index under the user config dir, the closest
// server-side analogue of browser local storage.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vipshop", "orders.json"), nil
}

// Remember prepends id, skipping if already present. Calling it twice with
// the same id leaves exactly one entry.
func (i *Index) Remember(id string) error {
	ids, err := i.load()
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return i.save(append([]string{id}, ids...))
}

// ListRemembered returns the locally persisted ids, most recent first.
func (i *Index) ListRemembered() ([]string, error) {
	return i.load()
}

// ResolveRemembered fetches the current snapshot of every remembered order.
func (i *Index) ResolveRemembered(ctx context.Context) ([]entity.Order, error) {
	if i.resolver == nil {
		return nil, errors.New("no resolver configured")
	}
	ids, err := i.load()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return i.resolver.Resolve(ctx, ids)
}

func (i *Index) load() ([]string, error) {
	data, err := os.ReadFile(i.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// a corrupt index is discarded, not fatal
		return nil, nil
	}
	return ids, nil
}

func (i *Index) save(ids []string) error {
	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return os.WriteFile(i.path, data, 0644)
}
