// file: internals/helpers/validation_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"format lokal 08", "081234567890", true},
		{"format +62", "+6281234567890", true},
		{"format 62 tanpa plus", "6281234567890", true},
		{"dengan spasi pinggir", "  081234567890  ", true},
		{"bukan nomor seluler", "1234567890", false},
		{"prefix 80 tidak valid", "080123456789", false},
		{"terlalu pendek", "0812345", false},
		{"terlalu panjang", "0812345678901234", false},
		{"ada huruf", "08123abc789", false},
		{"kosong", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidPhone(tc.input))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.com"))
	assert.True(t, ValidEmail("operator.daerah+1@koperasi.co.id"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("tanpa-at.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidNIK(t *testing.T) {
	assert.True(t, ValidNIK("3173051203900001"))
	assert.False(t, ValidNIK("317305120390000"))   // 15 digit
	assert.False(t, ValidNIK("31730512039000012")) // 17 digit
	assert.False(t, ValidNIK("31730512039000ab"))
	assert.False(t, ValidNIK(""))
}

func TestResolvePagingDefaults(t *testing.T) {
	// via BuildPagination langsung; resolver butuh fiber.Ctx dan diuji
	// lewat handler di paket route.
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
