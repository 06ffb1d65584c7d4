// file: internals/helpers/storage/local_storage.go
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"koperasiku_backend/internals/configs"
)

/*
LocalStorage menyimpan berkas upload ke direktori publik lokal.
Nilai yang disimpan di DB adalah path relatif (mis.
"documents/<koperasi_id>/20250101-xxxx-akta.pdf"); path absolut dan
prefix URL publik diturunkan dari ENV.
*/

type Kind string

const (
	KindDocument     Kind = "document"      // dokumen legalitas umum
	KindRATDocument  Kind = "rat"           // dokumen RAT tahunan
	KindProfileImage Kind = "profile_image" // foto profil user
)

// Plafon ukuran per jenis endpoint (lihat kontrak upload).
var sizeLimits = map[Kind]int64{
	KindDocument:     5 * 1024 * 1024,
	KindRATDocument:  10 * 1024 * 1024,
	KindProfileImage: 2 * 1024 * 1024,
}

// MIME diperiksa dari isi berkas (sniffing), bukan Content-Type klien.
var allowedMime = map[Kind][]string{
	KindDocument:     {"application/pdf", "image/jpeg", "image/png", "image/webp"},
	KindRATDocument:  {"application/pdf"},
	KindProfileImage: {"image/jpeg", "image/png", "image/webp"},
}

type LocalStorage struct {
	BaseDir    string // direktori fisik, mis. ./public/uploads
	PublicBase string // prefix URL publik, mis. /uploads
}

func NewLocalStorageFromEnv() *LocalStorage {
	return &LocalStorage{
		BaseDir:    configs.GetEnv("UPLOAD_DIR", "./public/uploads"),
		PublicBase: configs.GetEnv("UPLOAD_PUBLIC_BASE", "/uploads"),
	}
}

// CheckFile memvalidasi ukuran & MIME; mengembalikan MIME hasil sniffing.
func CheckFile(kind Kind, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if limit, ok := sizeLimits[kind]; ok && fh.Size > limit {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Ukuran file melebihi batas %d MB", limit/(1024*1024)))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca isi file")
	}
	detected := mt.String()
	for _, m := range allowedMime[kind] {
		if strings.HasPrefix(detected, m) {
			return m, nil
		}
	}
	return "", fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("Tipe file %s tidak diizinkan untuk upload ini", detected))
}

// SaveDocument menyimpan dokumen koperasi ke subdir per-koperasi.
func (s *LocalStorage) SaveDocument(koperasiID uuid.UUID, kind Kind, fh *multipart.FileHeader) (relPath, mime string, err error) {
	mime, err = CheckFile(kind, fh)
	if err != nil {
		return "", "", err
	}
	rel := path.Join("documents", koperasiID.String(), uniqueFilename(fh.Filename))
	if err := s.write(rel, fh); err != nil {
		return "", "", err
	}
	return rel, mime, nil
}

// SaveProfileImage menyimpan foto profil (sudah di-re-encode WebP oleh caller)
// ke direktori flat dengan nama id+timestamp.
func (s *LocalStorage) SaveProfileImage(userID uuid.UUID, data []byte) (string, error) {
	rel := path.Join("profiles", fmt.Sprintf("%s-%d.webp", userID.String(), time.Now().Unix()))
	abs := filepath.Join(s.BaseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyiapkan direktori upload")
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file")
	}
	return rel, nil
}

// Remove menghapus berkas berdasarkan path relatif; dipakai best-effort
// saat resubmission delete.
func (s *LocalStorage) Remove(relPath string) error {
	if strings.TrimSpace(relPath) == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(relPath)))
}

// PublicURL menurunkan URL statis dari path relatif yang tersimpan di DB.
func (s *LocalStorage) PublicURL(relPath string) string {
	return strings.TrimRight(s.PublicBase, "/") + "/" + strings.TrimLeft(relPath, "/")
}

func (s *LocalStorage) write(relPath string, fh *multipart.FileHeader) error {
	abs := filepath.Join(s.BaseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyiapkan direktori upload")
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	dst, err := os.Create(abs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file")
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		_ = os.Remove(abs)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis file")
	}
	return nil
}

// Nama unik: tanggal + uuid + nama asli yang sudah disanitasi,
// supaya upload ulang tidak menimpa berkas lama.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uniqueFilename(original string) string {
	safe := unsafeFilenameChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
