package apiclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// SessionStore persiste el hecho de usuario autenticado entre ejecuciones.
// Es el análogo del localStorage del frontend original: una sola entrada,
// escrita en login y borrada en logout.
type SessionStore interface {
	Save(user *User) error
	Load() (*User, error) // (nil, nil) si no hay sesión guardada
	Clear() error
}

// FileSessionStore guarda el usuario serializado como JSON en un archivo.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore construye el store sobre la ruta dada.
// Con ruta vacía usa <config-dir>/estoque/session.json.
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "estoque", "session.json")
	}
	return &FileSessionStore{path: path}, nil
}

// Save escribe el usuario en el archivo de sesión.
func (s *FileSessionStore) Save(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load lee el usuario guardado; (nil, nil) si el archivo no existe.
func (s *FileSessionStore) Load() (*User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Clear elimina el archivo de sesión.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
