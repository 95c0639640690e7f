// Package localstore implementa el almacenamiento local durable: dos slots JSON en
// el directorio de datos, uno con la colección de pedidos y otro con el usuario de
// la sesión. Cada escritura es atómica (archivo temporal + fsync + rename).
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/domain/repository"
)

var (
	_ repository.OrderStore   = (*FileStore)(nil)
	_ repository.SessionStore = (*FileStore)(nil)
)

// FileStore slots en archivos JSON.
type FileStore struct {
	ordersPath  string
	sessionPath string
}

// sessionRecord contenido del slot de sesión; el PIN no se guarda.
type sessionRecord struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewFileStore crea el directorio de cada slot si no existe.
func NewFileStore(ordersPath, sessionPath string) (*FileStore, error) {
	for _, p := range []string{ordersPath, sessionPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	return &FileStore{ordersPath: ordersPath, sessionPath: sessionPath}, nil
}

// Load lee la colección. Un archivo inexistente es una colección vacía; un archivo
// ilegible es un error.
func (s *FileStore) Load(_ context.Context) ([]entity.Order, error) {
	data, err := os.ReadFile(s.ordersPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.ordersPath, err)
	}
	var list []entity.Order
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", s.ordersPath, err)
	}
	if list == nil {
		list = []entity.Order{}
	}
	return list, nil
}

// Save reemplaza la colección completa.
func (s *FileStore) Save(_ context.Context, orders []entity.Order) error {
	if orders == nil {
		orders = []entity.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("codificar pedidos: %w", err)
	}
	return writeAtomic(s.ordersPath, data)
}

// LoadUser devuelve (nil, nil) si el slot está vacío.
func (s *FileStore) LoadUser(_ context.Context) (*entity.User, error) {
	data, err := os.ReadFile(s.sessionPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.sessionPath, err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", s.sessionPath, err)
	}
	if rec.Name == "" {
		return nil, nil
	}
	return &entity.User{Name: rec.Name, Role: rec.Role}, nil
}

// SaveUser escribe el slot de sesión.
func (s *FileStore) SaveUser(_ context.Context, user entity.User) error {
	data, err := json.Marshal(sessionRecord{Name: user.Name, Role: user.Role})
	if err != nil {
		return err
	}
	return writeAtomic(s.sessionPath, data)
}

// ClearUser vacía el slot de sesión.
func (s *FileStore) ClearUser(_ context.Context) error {
	if err := os.Remove(s.sessionPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar %s: %w", s.sessionPath, err)
	}
	return nil
}

// writeAtomic escribe en un temporal del mismo directorio y lo renombra sobre path;
// si algo falla, path conserva su contenido anterior.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", path, err)
	}
	return nil
}
