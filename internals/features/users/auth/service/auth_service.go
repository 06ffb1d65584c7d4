package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"koperasiku_backend/internals/configs"
	"koperasiku_backend/internals/constants"
	"koperasiku_backend/internals/features/users/auth/dto"
	authHelper "koperasiku_backend/internals/features/users/auth/helper"
	"koperasiku_backend/internals/features/users/auth/model"
	helpers "koperasiku_backend/internals/helpers"
	"koperasiku_backend/internals/helpers/storage"
)

/* ==========================
   Const & Types
========================== */

const (
	// Kontrak cookie: auth-token berumur 7 hari.
	sessionTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if role == "" {
		role = constants.RoleLow
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Role:     role,
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = passwordHash

	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", dto.FromModelUser(&user))
}

/* ==========================
   LOGIN / LOGOUT
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user model.UserModel
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if !authHelper.CheckPassword(user.Password, input.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := buildSessionToken(&user, nowUTC())
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	setAuthCookie(c, token, nowUTC())

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user": dto.FromModelUser(&user),
	})
}

func Logout(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	var user model.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helpers.JsonOK(c, "", dto.FromModelUser(&user))
}

// UpdatePhoto mengganti foto profil (plafon 2MB, re-encode WebP).
func UpdatePhoto(db *gorm.DB, blob *storage.LocalStorage, c *fiber.Ctx) error {
	userID, err := helpers.GetUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "File foto tidak ditemukan")
	}
	if _, err := storage.CheckFile(storage.KindProfileImage, fh); err != nil {
		return jsonFromFiberErr(c, err)
	}

	data, err := storage.EncodeProfileWebP(fh)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	relPath, err := blob.SaveProfileImage(userID, data)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}

	if err := db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("photo_url", relPath).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto profil")
	}

	return helpers.JsonUpdated(c, "Foto profil diperbarui", fiber.Map{
		"photo_url": relPath,
	})
}

// jsonFromFiberErr menormalkan *fiber.Error ke envelope JSON standar.
func jsonFromFiberErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helpers.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] auth: %v", err)
	return helpers.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

/* ==========================
   Session token & cookie
========================== */

func buildSessionToken(u *model.UserModel, now time.Time) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func setAuthCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth-token",
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
		Expires:  now.Add(sessionTTL),
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth-token",
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}
