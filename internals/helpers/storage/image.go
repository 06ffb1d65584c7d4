// file: internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

// EncodeProfileWebP men-decode gambar upload, menyesuaikan orientasi EXIF,
// membatasi dimensi 512x512, lalu meng-encode ulang sebagai WebP.
func EncodeProfileWebP(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file gambar")
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File bukan gambar yang valid")
	}

	img = imaging.Fit(img, 512, 512, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal meng-encode gambar")
	}
	return buf.Bytes(), nil
}
