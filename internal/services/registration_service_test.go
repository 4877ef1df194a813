package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"galleria/internal/models"
)

// --- mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 1
		user.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	args := m.Called(id)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateAvatar(userID int, avatarURL string) error {
	return m.Called(userID, avatarURL).Error(0)
}

func (m *mockUserRepo) UpdateProfile(user *models.User) error {
	return m.Called(user).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendVerificationCode(email, code string) error {
	return m.Called(email, code).Error(0)
}

// --- builder ---

func newRegistrationService(users *mockUserRepo, mailer *mockMailer) (*RegistrationService, *VerificationService) {
	codes := NewVerificationService(newFakeCodeRepo(), 10*time.Minute)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewRegistrationService(users, codes, mailer, tokens), codes
}

// --- RequestCode ---

func TestRequestCode_InvalidEmail(t *testing.T) {
	svc, _ := newRegistrationService(&mockUserRepo{}, &mockMailer{})

	err := svc.RequestCode("not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRequestCode_IssuesAndDispatches(t *testing.T) {
	mailer := &mockMailer{}
	mailer.On("SendVerificationCode", "a@example.com", mock.AnythingOfType("string")).Return(nil)

	svc, codes := newRegistrationService(&mockUserRepo{}, mailer)

	// address is normalized before issue and dispatch
	require.NoError(t, svc.RequestCode("  A@Example.COM "))
	mailer.AssertExpectations(t)

	sent := mailer.Calls[0].Arguments.String(1)
	ok, err := codes.Validate("a@example.com", sent, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByUsername", "alice").Return(nil, nil)
	users.On("GetByEmail", "a@example.com").Return(nil, nil)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	mailer := &mockMailer{}
	mailer.On("SendVerificationCode", "a@example.com", mock.AnythingOfType("string")).Return(nil)

	svc, codes := newRegistrationService(users, mailer)
	require.NoError(t, svc.RequestCode("a@example.com"))
	code := mailer.Calls[0].Arguments.String(1)

	user, err := svc.Register("alice", "A@example.com", "s3cret-pass", code)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, VerifyPassword(user.PasswordHash, "s3cret-pass"))

	// the code was consumed: registering again fails before any lookup
	ok, verr := codes.Validate("a@example.com", code, time.Now())
	require.NoError(t, verr)
	assert.False(t, ok)

	_, err = svc.Register("alice2", "a@example.com", "s3cret-pass", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)

	users.AssertExpectations(t)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _ := newRegistrationService(&mockUserRepo{}, &mockMailer{})

	_, err := svc.Register("alice", "bogus", "pass", "123456")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_BadCodeHaltsBeforeChecks(t *testing.T) {
	users := &mockUserRepo{} // no expectations: repo must never be touched
	svc, _ := newRegistrationService(users, &mockMailer{})

	_, err := svc.Register("alice", "a@example.com", "pass", "000000")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	users.AssertNotCalled(t, "GetByUsername", mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByUsername", "alice").Return(&models.User{ID: 7, Username: "alice"}, nil)

	mailer := &mockMailer{}
	mailer.On("SendVerificationCode", mock.Anything, mock.Anything).Return(nil)

	svc, _ := newRegistrationService(users, mailer)
	require.NoError(t, svc.RequestCode("a@example.com"))
	code := mailer.Calls[0].Arguments.String(1)

	_, err := svc.Register("alice", "a@example.com", "pass", code)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByUsername", "alice").Return(nil, nil)
	users.On("GetByEmail", "a@example.com").Return(&models.User{ID: 7, Email: "a@example.com"}, nil)

	mailer := &mockMailer{}
	mailer.On("SendVerificationCode", mock.Anything, mock.Anything).Return(nil)

	svc, _ := newRegistrationService(users, mailer)
	require.NoError(t, svc.RequestCode("a@example.com"))
	code := mailer.Calls[0].Arguments.String(1)

	_, err := svc.Register("alice", "a@example.com", "pass", code)
	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_ExpiredCode(t *testing.T) {
	users := &mockUserRepo{}

	repo := newFakeCodeRepo()
	codes := NewVerificationService(repo, 10*time.Minute)
	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewRegistrationService(users, codes, &mockMailer{}, tokens)

	// issue eleven minutes in the past
	code, err := codes.Issue("a@example.com", time.Now().Add(-11*time.Minute))
	require.NoError(t, err)

	_, err = svc.Register("alice", "a@example.com", "pass", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

// --- Login ---

func TestLogin_SuccessAndTokenSubject(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	users := &mockUserRepo{}
	users.On("GetByUsername", "alice").Return(&models.User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	tokens := NewTokenService("test-secret", time.Hour)
	svc := NewRegistrationService(users, NewVerificationService(newFakeCodeRepo(), 10*time.Minute), &mockMailer{}, tokens)

	token, err := svc.Login("alice", "s3cret-pass")
	require.NoError(t, err)

	subject, err := tokens.Verify(token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	users := &mockUserRepo{}
	users.On("GetByUsername", "alice").Return(&models.User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	svc, _ := newRegistrationService(users, &mockMailer{})

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByUsername", "ghost").Return(nil, nil)

	svc, _ := newRegistrationService(users, &mockMailer{})

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}
