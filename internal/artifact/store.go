package artifact

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"

	"rocketeda/internal/errors"
)

// Store reads pre-generated artifacts from a fixed root directory.
// The directory is written by the offline analysis pipeline and is
// treated as read-only here.
type Store struct {
	root string
}

// Image is a loaded raster artifact. The caption always comes from
// the caller; it is never derived from the file.
type Image struct {
	Filename string
	Data     []byte
	Width    int
	Height   int
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the artifact root directory.
func (s *Store) Root() string {
	return s.root
}

// resolve maps a bare artifact filename to its on-disk path. Names
// containing path separators or traversal are rejected outright.
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" {
		return "", errors.InvalidInput("artifact filename is empty")
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return "", errors.InvalidInput("artifact filename must be a bare name: " + filename)
	}
	return filepath.Join(s.root, filename), nil
}

// read performs a single read-or-absent operation. There is no
// separate existence check, so callers cannot race between a stat
// and the read.
func (s *Store) read(filename string) ([]byte, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ArtifactMissing(filename)
		}
		return nil, errors.Wrapf(err, "read artifact %s", filename)
	}
	return data, nil
}

// LoadImage reads a PNG artifact and verifies it decodes.
func (s *Store) LoadImage(filename string) (*Image, error) {
	data, err := s.read(filename)
	if err != nil {
		return nil, err
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.ArtifactMalformed(filename, err)
	}
	return &Image{
		Filename: filename,
		Data:     data,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// LoadHTML reads an HTML fragment artifact. The markup is opaque and
// untrusted; it is only ever rendered inside an isolated frame.
func (s *Store) LoadHTML(filename string) (string, error) {
	data, err := s.read(filename)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.ArtifactMalformed(filename, errors.New(errors.CodeArtifactMalformed, "invalid UTF-8"))
	}
	return string(data), nil
}

// LoadFile reads an artifact as raw bytes, for download handlers.
func (s *Store) LoadFile(filename string) ([]byte, error) {
	return s.read(filename)
}

// Exists reports whether the artifact is present.
func (s *Store) Exists(filename string) bool {
	path, err := s.resolve(filename)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// PDFPages returns the page count of a PDF artifact. A file that is
// present but does not parse yields an artifact-malformed error; the
// caller decides whether that blocks anything (the download path does
// not depend on this probe).
func (s *Store) PDFPages(filename string) (int, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return 0, err
	}
	f, reader, err := pdflib.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.ArtifactMissing(filename)
		}
		return 0, errors.ArtifactMalformed(filename, err)
	}
	defer f.Close()
	return reader.NumPage(), nil
}
