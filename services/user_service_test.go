package services

import (
	"errors"
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "Asha@X.com",
		Password:  "secret123",
		PRN:       "P1",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@x.com", user.Email) // normalized
	assert.Equal(t, models.RoleStudent, user.Role)

	// plaintext is never stored
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegister_Duplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret123", PRN: "P1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{FirstName: "C", LastName: "D", Email: "a@x.com", Password: "secret123", PRN: "P2"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(RegisterInput{FirstName: "C", LastName: "D", Email: "c@x.com", Password: "secret123", PRN: "P1"})
	assert.ErrorIs(t, err, ErrPRNTaken)
}

func TestRegister_AdminRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret123", PRN: "P1", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// anything other than admin falls back to student
	user, err = svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "b@x.com", Password: "secret123", PRN: "P2", Role: "superuser"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret123", PRN: "P1"})
	require.NoError(t, err)

	byEmail, err := svc.Authenticate("a@x.com", "", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byEmail.Email)

	byPRN, err := svc.Authenticate("", "P1", "secret123")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byPRN.ID)

	// every failure mode collapses into the same error
	_, err = svc.Authenticate("a@x.com", "", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("ghost@x.com", "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("", "NOPE", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("", "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_Duplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret123", PRN: "P1"})
	require.NoError(t, err)
	other, err := svc.Register(RegisterInput{FirstName: "C", LastName: "D", Email: "c@x.com", Password: "secret123", PRN: "P2"})
	require.NoError(t, err)

	// each collision reports the field that actually clashed
	_, err = svc.UpdateProfile(other.ID, ProfileUpdateInput{PRN: "P1"})
	assert.ErrorIs(t, err, ErrPRNTaken)

	_, err = svc.UpdateProfile(other.ID, ProfileUpdateInput{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDuplicateIdentityError(t *testing.T) {
	mysqlPRN := errors.New("Error 1062 (23000): Duplicate entry 'P1' for key 'users.idx_users_prn'")
	assert.ErrorIs(t, duplicateIdentityError(mysqlPRN), ErrPRNTaken)

	sqlitePRN := errors.New("UNIQUE constraint failed: users.prn")
	assert.ErrorIs(t, duplicateIdentityError(sqlitePRN), ErrPRNTaken)

	mysqlEmail := errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.idx_users_email'")
	assert.ErrorIs(t, duplicateIdentityError(mysqlEmail), ErrEmailTaken)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret123", PRN: "P1"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateInput{FirstName: "Anita", Password: "newpass456"})
	require.NoError(t, err)

	assert.Equal(t, "Anita", updated.FirstName)
	assert.Equal(t, "B", updated.LastName) // empty fields keep stored values
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass456")))

	_, err = svc.UpdateProfile(9999, ProfileUpdateInput{FirstName: "X"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
