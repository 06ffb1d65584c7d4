// file: internals/helpers/validation.go
package helper

import (
	"regexp"
	"strings"
)

// Pola nomor seluler Indonesia: prefix +62/62/0, lalu 8 + digit operator
// (81x..89x tanpa 80x), total 9-12 digit setelah prefix.
var phoneRegex = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`)

// Validasi email sederhana, cukup untuk menolak "a@b" tanpa TLD.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NIK: 16 digit angka.
var nikRegex = regexp.MustCompile(`^[0-9]{16}$`)

func ValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

func ValidNIK(s string) bool {
	return nikRegex.MatchString(strings.TrimSpace(s))
}

// Pesan validasi terlokalisasi — frontend menampilkan string ini apa adanya.
const (
	MsgPhoneInvalid   = "Nomor telepon tidak valid. Gunakan format nomor seluler Indonesia (08xx/+628xx)."
	MsgEmailInvalid   = "Format email tidak valid."
	MsgNIKInvalid     = "NIK harus terdiri dari 16 digit angka."
	MsgNameTooShort   = "Nama koperasi minimal 3 karakter."
	MsgMinMembers     = "Jumlah anggota koperasi minimal 20 orang."
	MsgReasonTooShort = "Alasan penolakan minimal 20 karakter."
)
