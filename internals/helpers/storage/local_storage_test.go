// file: internals/helpers/storage/local_storage_test.go
package storage

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader membangun *multipart.FileHeader sungguhan lewat
// encode-decode form, supaya CheckFile diuji persis seperti di handler.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(32 * 1024 * 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

// pdfPayload: isi yang terdeteksi application/pdf oleh sniffing.
func pdfPayload(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte("%PDF-1.4\n"))
	return b
}

func pngPayload() []byte {
	return []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
}

func TestCheckFileSizeLimits(t *testing.T) {
	sixMB := pdfPayload(6 * 1024 * 1024)

	t.Run("6MB ditolak untuk dokumen umum (plafon 5MB)", func(t *testing.T) {
		fh := buildFileHeader(t, "akta.pdf", sixMB)
		_, err := CheckFile(KindDocument, fh)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ukuran file")
	})

	t.Run("6MB diterima untuk RAT (plafon 10MB)", func(t *testing.T) {
		fh := buildFileHeader(t, "rat-2025.pdf", sixMB)
		mime, err := CheckFile(KindRATDocument, fh)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", mime)
	})

	t.Run("foto profil di atas 2MB ditolak", func(t *testing.T) {
		big := make([]byte, 3*1024*1024)
		copy(big, pngPayload())
		fh := buildFileHeader(t, "foto.png", big)
		_, err := CheckFile(KindProfileImage, fh)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ukuran file")
	})
}

func TestCheckFileMimeSniffing(t *testing.T) {
	t.Run("PNG ditolak untuk RAT meski ekstensi pdf", func(t *testing.T) {
		fh := buildFileHeader(t, "menyamar.pdf", pngPayload())
		_, err := CheckFile(KindRATDocument, fh)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tidak diizinkan")
	})

	t.Run("PNG diterima untuk dokumen umum", func(t *testing.T) {
		fh := buildFileHeader(t, "bukti.png", pngPayload())
		mime, err := CheckFile(KindDocument, fh)
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("PDF ditolak untuk foto profil", func(t *testing.T) {
		fh := buildFileHeader(t, "cv.pdf", pdfPayload(1024))
		_, err := CheckFile(KindProfileImage, fh)
		require.Error(t, err)
	})

	t.Run("file nil ditolak", func(t *testing.T) {
		_, err := CheckFile(KindDocument, nil)
		require.Error(t, err)
	})
}

func TestSaveAndRemoveRoundTrip(t *testing.T) {
	st := &LocalStorage{BaseDir: t.TempDir(), PublicBase: "/uploads"}
	fh := buildFileHeader(t, "akta pendirian (final).pdf", pdfPayload(2048))

	rel, mime, err := st.SaveDocument(uuid.New(), KindDocument, fh)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)
	assert.NotContains(t, rel, " ", "nama berkas harus tersanitasi")
	assert.NotContains(t, rel, "(")

	assert.Equal(t, "/uploads/"+rel, st.PublicURL(rel))
	assert.NoError(t, st.Remove(rel))
}

func TestPublicURLNormalizesSlashes(t *testing.T) {
	st := &LocalStorage{BaseDir: ".", PublicBase: "/uploads/"}
	assert.Equal(t, "/uploads/documents/x.pdf", st.PublicURL("/documents/x.pdf"))
}
