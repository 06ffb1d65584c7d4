// file: internals/features/koperasi/koperasis/dto/koperasi_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koperasiku_backend/internals/features/koperasi/koperasis/model"
)

func TestToModelKoperasiNormalizes(t *testing.T) {
	req := KoperasiCreateRequest{
		KoperasiName:              "  Koperasi Maju Bersama  ",
		KoperasiType:              "simpan_pinjam",
		KoperasiContactEmail:      " Pengurus@MajuBersama.CO.ID ",
		KoperasiContactPhone:      " 081234567890 ",
		KoperasiDescription:       "   ",
		KoperasiTotalMembers:      25,
		KoperasiEstablishmentDate: "2020-05-17",
	}

	m := ToModelKoperasi(&req)
	assert.Equal(t, "Koperasi Maju Bersama", m.KoperasiName)
	assert.Equal(t, model.TypeSimpanPinjam, m.KoperasiType)
	assert.Equal(t, "pengurus@majubersama.co.id", m.KoperasiContactEmail)
	assert.Equal(t, "081234567890", m.KoperasiContactPhone)
	assert.Nil(t, m.KoperasiDescription, "deskripsi whitespace harus nil")
	assert.Equal(t, model.StatusPendingVerification, m.KoperasiStatus)
	assert.Equal(t, model.LegalNotSubmitted, m.KoperasiLegalStatus)
	require.NotNil(t, m.KoperasiEstablishmentDate)
	assert.Equal(t, "2020-05-17", m.KoperasiEstablishmentDate.Format("2006-01-02"))
}

func TestToModelKoperasiIgnoresBadDate(t *testing.T) {
	req := KoperasiCreateRequest{KoperasiEstablishmentDate: "17-05-2020"}
	m := ToModelKoperasi(&req)
	assert.Nil(t, m.KoperasiEstablishmentDate)
}

func TestApplyKoperasiUpdatePartial(t *testing.T) {
	desc := "Koperasi simpan pinjam desa"
	m := &model.KoperasiModel{
		KoperasiName:         "Nama Lama",
		KoperasiType:         model.TypeKonsumsi,
		KoperasiDescription:  &desc,
		KoperasiTotalMembers: 30,
		KoperasiContactPhone: "081234567890",
	}

	newName := "  Nama Baru  "
	emptyDesc := "   "
	ApplyKoperasiUpdate(m, &KoperasiUpdateRequest{
		KoperasiName:        &newName,
		KoperasiDescription: &emptyDesc,
	})

	assert.Equal(t, "Nama Baru", m.KoperasiName)
	assert.Nil(t, m.KoperasiDescription, "string kosong harus mengosongkan kolom")
	// Field yang tidak dikirim tidak tersentuh
	assert.Equal(t, model.TypeKonsumsi, m.KoperasiType)
	assert.Equal(t, 30, m.KoperasiTotalMembers)
	assert.Equal(t, "081234567890", m.KoperasiContactPhone)
}

func TestFromModelKoperasiFlattensPointers(t *testing.T) {
	m := &model.KoperasiModel{
		KoperasiName:         "Koperasi Maju Bersama",
		KoperasiType:         model.TypeSimpanPinjam,
		KoperasiStatus:       model.StatusPending,
		KoperasiLegalStatus:  model.LegalPendingReview,
		KoperasiContactPhone: "081234567890",
	}

	resp := FromModelKoperasi(m)
	assert.Equal(t, "PENDING", resp.KoperasiStatus)
	assert.Equal(t, "PENDING_REVIEW", resp.KoperasiLegalStatus)
	assert.Equal(t, "", resp.KoperasiDescription)
	assert.Equal(t, "", resp.KoperasiRejectionReason)
}
