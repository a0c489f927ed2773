package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomOTP(t *testing.T) {
	otpPattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, otpPattern, GenerateRandomOTP())
	}
}

func TestGenerateRandomPasswordLength(t *testing.T) {
	for _, length := range []int{8, 12, 32} {
		assert.Len(t, GenerateRandomPassword(length), length)
	}
}

func TestGenerateUsernameFromFullName(t *testing.T) {
	username := GenerateUsernameFromFullName("Juan Santos")
	assert.Regexp(t, regexp.MustCompile(`^juan\.santos\d{1,3}$`), username)
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("changeme", "sk-barangay.ph")
	require.NoError(t, err)

	assert.NotEmpty(t, user.FullName)
	assert.Contains(t, user.Email, "@sk-barangay.ph")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("changeme")))
}
