// Package uploads persiste las imágenes adjuntas de Pokémon bajo un
// directorio público y devuelve la ruta relativa que se guarda como
// imagen_url.
package uploads

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store writes uploaded images into dir and reports them under publicPath.
type Store struct {
	dir        string // directorio físico, p.ej. public/images/pokemon
	publicPath string // prefijo relativo devuelto al cliente
}

// NewStore returns a Store writing into dir. publicPath is the relative
// prefix used in the stored imagen_url.
func NewStore(dir, publicPath string) *Store {
	return &Store{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}
}

// Save persists the uploaded file under a collision-resistant name derived
// from the current time and the Pokémon's name, keeping the original
// extension. Returns the relative public path of the stored file.
func (s *Store) Save(fh *multipart.FileHeader, nombre string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error al crear el directorio de imágenes %s: %w", s.dir, err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	sum := md5.Sum([]byte(strconv.FormatInt(time.Now().UnixNano(), 10) + nombre))
	name := hex.EncodeToString(sum[:]) + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("error al leer el archivo subido: %w", err)
	}
	defer src.Close()

	destPath := filepath.Join(s.dir, name)
	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("error al mover el archivo a %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("error al escribir el archivo %s: %w", destPath, err)
	}

	return s.publicPath + "/" + name, nil
}

// Dir returns the physical directory the store writes into.
func (s *Store) Dir() string { return s.dir }
