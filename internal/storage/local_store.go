package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"jobtracker-api/internal/apperrors"
	"jobtracker-api/internal/models"
)

// Store persists application attachments. Files are addressed by the
// (application id, kind) pair; the returned ref is what gets persisted on
// the application record and handed back for Retrieve/Delete.
type Store interface {
	Store(recordID string, kind models.AttachmentKind, filename string, r io.Reader) (string, error)
	Retrieve(ref string) ([]byte, error)
	Delete(ref string) error
}

// LocalStore keeps attachments on the local filesystem under a base
// directory, laid out as resumes/<id><ext> and cover_letters/<id><ext>.
// Keying by (id, kind) instead of the uploaded filename means deleting a
// record's files never needs an index lookup.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	for _, kind := range []models.AttachmentKind{models.KindResume, models.KindCoverLetter} {
		dir := filepath.Join(baseDir, kindDir(kind))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.NewStorage("init", err)
		}
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func kindDir(kind models.AttachmentKind) string {
	return string(kind) + "s"
}

// Store writes the bytes to a temp file in the target directory and renames
// it into place, so a failed write leaves no partial file behind. An
// existing file for the same (recordID, kind) is replaced.
func (s *LocalStore) Store(recordID string, kind models.AttachmentKind, filename string, r io.Reader) (string, error) {
	ref := filepath.Join(kindDir(kind), recordID+safeExt(filename))
	dst := filepath.Join(s.baseDir, ref)

	tmp := dst + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", apperrors.NewStorage("write", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", apperrors.NewStorage("write", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", apperrors.NewStorage("write", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", apperrors.NewStorage("write", err)
	}
	return filepath.ToSlash(ref), nil
}

func (s *LocalStore) Retrieve(ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("attachment %s: %w", ref, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, apperrors.NewStorage("read", err)
	}
	return data, nil
}

// Delete is idempotent: removing a ref that does not exist is a no-op.
func (s *LocalStore) Delete(ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return nil
	}
	err = os.Remove(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return apperrors.NewStorage("delete", err)
}

// resolve maps a ref back to a path under baseDir, rejecting refs that try
// to escape it.
func (s *LocalStore) resolve(ref string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if clean == "" || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("attachment %s: %w", ref, apperrors.ErrNotFound)
	}
	return filepath.Join(s.baseDir, clean), nil
}

// safeExt keeps the uploaded file's extension so downloads open in the right
// program, but drops anything that is not a plain short suffix.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
