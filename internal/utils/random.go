package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

var commonFirstNames = []string{
	"Juan", "Maria", "Jose", "Ana", "Carlo", "Liza", "Ramon", "Grace",
	"Paolo", "Angel", "Marco", "Jenny", "Dante", "Rosa", "Nico", "Bea",
	"Miguel", "Clara", "Andres", "Teresa",
}

var commonSurnames = []string{
	"Santos", "Reyes", "Cruz", "Bautista", "Garcia", "Mendoza", "Torres",
	"Flores", "Ramos", "Gonzales", "Aquino", "Villanueva", "Castillo",
	"Fernandez", "Domingo", "Salazar", "Navarro", "Mercado", "Aguilar", "Rivera",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + last
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleOfficial,
	domain.RoleMember,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	username := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}
