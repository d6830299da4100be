package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/mock"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "jane@example.com"
	testPassword = "correct horse battery"
	testSample   = "fingerprint-template-0001"
)

var (
	testMeta = models.ClientMeta{IPAddress: "203.0.113.7", UserAgent: "legacy-keeper-cli/1.0"}

	testAuthConfig = config.Auth{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "legacy-keeper",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
		BcryptCost:           bcrypt.MinCost,
		PasswordLockout:      config.Lockout{Threshold: 5, Duration: 30 * time.Minute},
		BiometricLockout:     config.Lockout{Threshold: 3, Duration: time.Hour},
	}
)

// passthroughTx runs fn directly; repositories are mocked so there is nothing
// to commit.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// lockoutRecorder counts RecordLockout calls and ignores everything else.
type lockoutRecorder struct {
	lockouts []string
}

func (r *lockoutRecorder) RecordOperation(context.Context, string, string, string) {}

func (r *lockoutRecorder) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (r *lockoutRecorder) RecordAuthAttempt(context.Context, string, string) {}

func (r *lockoutRecorder) RecordLockout(_ context.Context, method string) {
	r.lockouts = append(r.lockouts, method)
}

type authMocks struct {
	users    *mock.MockUserRepository
	keys     *mock.MockKeyRepository
	sessions *mock.MockSessionRepository
	activity *mock.MockActivityRepository
	keyChain crypto.KeyChainService
	clock    *fakeClock
	lockouts *lockoutRecorder
}

func newTestKeyChain() crypto.KeyChainService {
	return crypto.NewKeyChainService(
		crypto.WithIterations(1000),
		crypto.WithMasterKeyIterations(1000),
		crypto.WithBiometricParams(2, 1000),
		crypto.WithRSABits(1024),
	)
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, authMocks) {
	t.Helper()

	m := authMocks{
		users:    mock.NewMockUserRepository(ctrl),
		keys:     mock.NewMockKeyRepository(ctrl),
		sessions: mock.NewMockSessionRepository(ctrl),
		activity: mock.NewMockActivityRepository(ctrl),
		keyChain: newTestKeyChain(),
		clock:    &fakeClock{now: time.Now().UTC().Truncate(time.Second)},
		lockouts: &lockoutRecorder{},
	}

	storages := &store.Storages{
		UserRepository:     m.users,
		KeyRepository:      m.keys,
		SessionRepository:  m.sessions,
		ActivityRepository: m.activity,
		TxManager:          passthroughTx{},
	}

	svc := NewAuthService(storages, m.keyChain, testAuthConfig, logger.Nop(),
		WithClock(m.clock.Now),
		WithLockoutMetrics(m.lockouts),
	).(*authService)

	return svc, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testUser(t *testing.T) models.User {
	t.Helper()
	return models.User{
		UserID:       42,
		Email:        testEmail,
		PasswordHash: hashPassword(t, testPassword),
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// userState emulates the users table for multi-step lockout scenarios. The
// failed-attempt update mirrors the single-statement SQL: increment, then lock
// when the new count reaches the threshold.
type userState struct {
	user models.User
}

func (s *userState) expect(m authMocks) {
	m.users.EXPECT().FindActiveByEmail(gomock.Any(), s.user.Email).
		DoAndReturn(func(context.Context, string) (models.User, error) {
			return s.user, nil
		}).AnyTimes()

	m.users.EXPECT().RecordFailedAttempt(gomock.Any(), s.user.UserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, threshold int, lockUntil time.Time) (models.AttemptState, error) {
			s.user.LoginAttempts++
			if s.user.LoginAttempts >= threshold {
				until := lockUntil
				s.user.LockedUntil = &until
			}
			return models.AttemptState{LoginAttempts: s.user.LoginAttempts, LockedUntil: s.user.LockedUntil}, nil
		}).AnyTimes()

	m.users.EXPECT().ResetAttempts(gomock.Any(), s.user.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, at time.Time) error {
			s.user.LoginAttempts = 0
			s.user.LockedUntil = nil
			s.user.LastLogin = &at
			return nil
		}).AnyTimes()
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:     "  Jane@Example.COM ",
		Password:  testPassword,
		FirstName: "Jane",
		LastName:  "Doe",
	}
	masterKey := m.keyChain.CreateMasterKey(testEmail, testPassword)

	var session models.Session
	m.users.EXPECT().ExistsActiveByEmail(gomock.Any(), testEmail).Return(false, nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, testEmail, u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(testPassword)))
			assert.NotContains(t, u.EncryptedFirstName.Ciphertext, "Jane")

			first, err := m.keyChain.Decrypt(u.EncryptedFirstName, masterKey.Secret())
			assert.NoError(t, err)
			assert.Equal(t, "Jane", first)
			last, err := m.keyChain.Decrypt(u.EncryptedLastName, masterKey.Secret())
			assert.NoError(t, err)
			assert.Equal(t, "Doe", last)

			assert.Equal(t, u.EncryptedFirstName.Salt, u.EncryptionSalt)
			assert.Equal(t, u.EncryptedFirstName.IV, u.EncryptionIV)

			u.UserID = 7
			u.CreatedAt = m.clock.now
			return u, nil
		})
	m.keys.EXPECT().CreateKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k models.UserEncryptionKey) (models.UserEncryptionKey, error) {
			assert.Equal(t, int64(7), k.UserID)
			assert.Equal(t, models.KeyTypeRSA, k.KeyType)
			assert.True(t, k.IsActive)
			assert.Contains(t, k.PublicKey, "PUBLIC KEY")

			private, err := m.keyChain.UnwrapPrivateKey(k.EncryptedPrivateKey, masterKey)
			assert.NoError(t, err)
			assert.Contains(t, private, "PRIVATE KEY")
			return k, nil
		})
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
			assert.Equal(t, models.ActivityRegistration, e.ActivityType)
			assert.False(t, e.IsSuspicious)
			assert.Equal(t, testMeta.IPAddress, e.IPAddress)
			return nil
		})
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) (models.Session, error) {
			session = s
			return s, nil
		})

	res, err := svc.Register(ctx, req, testMeta)
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.User.ID)
	assert.Equal(t, testEmail, res.User.Email)
	assert.Contains(t, res.PublicKey, "PUBLIC KEY")
	assert.Nil(t, res.WrappedMasterKey)

	token, err := svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, models.AuthMethodPassword, token.AuthMethod)

	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, utils.HashToken(res.Token), session.SessionTokenHash)
	assert.Equal(t, utils.HashToken(res.RefreshToken), session.RefreshTokenHash)
	assert.Equal(t, m.clock.now.Add(testAuthConfig.RefreshTokenDuration), session.ExpiresAt)
	assert.Equal(t, testMeta.UserAgent, session.UserAgent)
}

func TestAuthService_Register_ClientSuppliedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	masterKey := m.keyChain.CreateMasterKey(testEmail, testPassword)
	first, err := m.keyChain.Encrypt("Jane", masterKey.Secret())
	require.NoError(t, err)
	last, err := m.keyChain.Encrypt("Doe", masterKey.Secret())
	require.NoError(t, err)
	pair, err := m.keyChain.GenerateKeyPair()
	require.NoError(t, err)
	wrapped, err := m.keyChain.WrapPrivateKey(pair, masterKey)
	require.NoError(t, err)

	req := models.RegisterRequest{
		Email:              testEmail,
		Password:           testPassword,
		MasterKey:          masterKey.Secret(),
		EncryptedFirstName: &first,
		EncryptedLastName:  &last,
		KeyPair:            &models.WrappedKeyPair{PublicKey: pair.PublicKey, EncryptedPrivateKey: wrapped},
	}

	m.users.EXPECT().ExistsActiveByEmail(gomock.Any(), testEmail).Return(false, nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, first, u.EncryptedFirstName)
			assert.Equal(t, last, u.EncryptedLastName)
			u.UserID = 8
			return u, nil
		})
	m.keys.EXPECT().CreateKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k models.UserEncryptionKey) (models.UserEncryptionKey, error) {
			assert.Equal(t, pair.PublicKey, k.PublicKey)
			assert.Equal(t, wrapped, k.EncryptedPrivateKey)
			return k, nil
		})
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil)

	res, err := svc.Register(ctx, req, testMeta)
	require.NoError(t, err)
	assert.Equal(t, pair.PublicKey, res.PublicKey)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	req := models.RegisterRequest{Email: testEmail, Password: testPassword, FirstName: "Jane", LastName: "Doe"}

	t.Run("exists check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestAuthService(t, ctrl)

		m.users.EXPECT().ExistsActiveByEmail(gomock.Any(), testEmail).Return(true, nil)

		_, err := svc.Register(context.Background(), req, testMeta)
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestAuthService(t, ctrl)

		m.users.EXPECT().ExistsActiveByEmail(gomock.Any(), testEmail).Return(false, nil)
		m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.Register(context.Background(), req, testMeta)
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "not-an-email",
		Password:  "short",
		FirstName: "Jane",
	}, testMeta)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "lastName")
	assert.NotContains(t, verr.Fields, "firstName")
}

func TestAuthService_Register_KeyStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	dbErr := errors.New("connection reset")

	m.users.EXPECT().ExistsActiveByEmail(gomock.Any(), testEmail).Return(false, nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 9}, nil)
	m.keys.EXPECT().CreateKey(gomock.Any(), gomock.Any()).Return(models.UserEncryptionKey{}, dbErr)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: testEmail, Password: testPassword, FirstName: "Jane", LastName: "Doe",
	}, testMeta)
	assert.ErrorIs(t, err, dbErr)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser(t)
	user.LoginAttempts = 2

	gomock.InOrder(
		m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil),
		m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, m.clock.now).Return(nil),
		m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("public-key-pem", nil),
		m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
				assert.Equal(t, models.ActivityLogin, e.ActivityType)
				assert.Equal(t, user.UserID, *e.UserID)
				return nil
			}),
		m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil),
	)

	res, err := svc.Login(ctx, models.LoginRequest{Email: "JANE@example.com", Password: testPassword}, testMeta)
	require.NoError(t, err)

	assert.Equal(t, user.UserID, res.User.ID)
	assert.Equal(t, "public-key-pem", res.PublicKey)
	require.NotNil(t, res.User.LastLogin)
	assert.Equal(t, m.clock.now, *res.User.LastLogin)
	assert.Nil(t, res.WrappedMasterKey)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestAuthService_Login_MissingPublicKeyTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	user := testUser(t)

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
	m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("", store.ErrKeyNotFound)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword}, testMeta)
	require.NoError(t, err)
	assert.Empty(t, res.PublicKey)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
			assert.Nil(t, e.UserID)
			assert.True(t, e.IsSuspicious)
			assert.Equal(t, models.ActivityLoginFailed, e.ActivityType)
			assert.Equal(t, 20, e.RiskScore)
			return nil
		})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: testPassword}, testMeta)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_WrongPasswordMatchesUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	user := testUser(t)

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
	m.users.EXPECT().FindActiveByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().RecordFailedAttempt(gomock.Any(), user.UserID, 5, m.clock.now.Add(30*time.Minute)).
		Return(models.AttemptState{LoginAttempts: 1}, nil)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, wrongPassword := svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: "wrong password"}, testMeta)
	_, unknownEmail := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "wrong password"}, testMeta)

	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_LockoutScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	state := &userState{user: testUser(t)}
	state.expect(m)

	var audit []models.ActivityLog
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
			audit = append(audit, e)
			return nil
		}).AnyTimes()
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), state.user.UserID).Return("pk", nil).AnyTimes()
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil).AnyTimes()

	wrong := models.LoginRequest{Email: testEmail, Password: "wrong password"}
	right := models.LoginRequest{Email: testEmail, Password: testPassword}
	lockedAt := m.clock.now

	for i := 1; i <= 4; i++ {
		_, err := svc.Login(ctx, wrong, testMeta)
		require.ErrorIs(t, err, ErrInvalidCredentials, "attempt %d", i)
		assert.Nil(t, state.user.LockedUntil, "attempt %d", i)
	}

	// the fifth failure sets the lock but still reads as bad credentials
	_, err := svc.Login(ctx, wrong, testMeta)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.NotNil(t, state.user.LockedUntil)
	assert.Equal(t, lockedAt.Add(30*time.Minute), *state.user.LockedUntil)
	assert.Equal(t, []string{string(models.AuthMethodPassword)}, m.lockouts.lockouts)

	// correct password on a locked account is rejected without counting
	_, err = svc.Login(ctx, right, testMeta)
	var locked *AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, lockedAt.Add(30*time.Minute), locked.Until)
	assert.Equal(t, 5, state.user.LoginAttempts)

	require.Len(t, audit, 6)
	for i, e := range audit[:5] {
		assert.Equal(t, models.ActivityLoginFailed, e.ActivityType)
		assert.True(t, e.IsSuspicious)
		assert.Equal(t, (i+1)*20, e.RiskScore)
	}
	assert.Equal(t, models.ActivityLoginLocked, audit[5].ActivityType)
	assert.Equal(t, 100, audit[5].RiskScore)

	m.clock.Advance(31 * time.Minute)

	res, err := svc.Login(ctx, right, testMeta)
	require.NoError(t, err)
	assert.Equal(t, state.user.UserID, res.User.ID)
	assert.Equal(t, 0, state.user.LoginAttempts)
	assert.Nil(t, state.user.LockedUntil)
}

func TestAuthService_Login_FailureAfterExpiredLockRelocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	expired := m.clock.now.Add(-time.Minute)
	state := &userState{user: testUser(t)}
	state.user.LoginAttempts = 5
	state.user.LockedUntil = &expired
	state.expect(m)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := svc.Login(ctx, models.LoginRequest{Email: testEmail, Password: "wrong password"}, testMeta)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 6, state.user.LoginAttempts)
	require.NotNil(t, state.user.LockedUntil)
	assert.True(t, state.user.LockedUntil.After(m.clock.now))

	_, err = svc.Login(ctx, models.LoginRequest{Email: testEmail, Password: testPassword}, testMeta)
	var locked *AccountLockedError
	assert.ErrorAs(t, err, &locked)
}

func TestAuthService_Login_BiometricSecondFactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	hash, err := m.keyChain.HashBiometricData(testSample)
	require.NoError(t, err)

	user := testUser(t)
	user.BiometricEnabled = true
	user.BiometricHash = hash.Hash
	user.BiometricSalt = hash.Salt

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil).Times(3)
	m.users.EXPECT().RecordFailedAttempt(gomock.Any(), user.UserID, 5, gomock.Any()).
		Return(models.AttemptState{LoginAttempts: 1}, nil)
	m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil).Times(2)
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("pk", nil).Times(2)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil).Times(2)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword, BiometricData: "someone-else"}, testMeta)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword, BiometricData: testSample}, testMeta)
	assert.NoError(t, err)

	// the sample is optional for password login
	_, err = svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword}, testMeta)
	assert.NoError(t, err)
}

func TestAuthService_Login_Errors(t *testing.T) {
	dbErr := errors.New("db is down")

	tests := []struct {
		name     string
		password string
		setup    func(m authMocks, user models.User)
		wantErr  error
	}{
		{
			name:     "lookup failure",
			password: testPassword,
			setup: func(m authMocks, _ models.User) {
				m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "counter update failure",
			password: "wrong password",
			setup: func(m authMocks, user models.User) {
				m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
				m.users.EXPECT().RecordFailedAttempt(gomock.Any(), user.UserID, gomock.Any(), gomock.Any()).
					Return(models.AttemptState{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "session write failure",
			password: testPassword,
			setup: func(m authMocks, user models.User) {
				m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
				m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
				m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("pk", nil)
				m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)
				m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAuthService(t, ctrl)
			user := testUser(t)
			tt.setup(m, user)

			_, err := svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: tt.password}, testMeta)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_AuditFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	user := testUser(t)

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
	m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("pk", nil)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(errors.New("audit table locked"))
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: testEmail, Password: testPassword}, testMeta)
	assert.NoError(t, err)
}

func TestAuthService_Login_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "", Password: ""}, testMeta)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

// ── Biometric ────────────────────────────────────────────────────────────────

func enrolledUser(t *testing.T, keyChain crypto.KeyChainService) models.User {
	t.Helper()

	hash, err := keyChain.HashBiometricData(testSample)
	require.NoError(t, err)
	wrapped, err := keyChain.Encrypt("master-key-hex", "device-secret")
	require.NoError(t, err)

	user := testUser(t)
	user.BiometricEnabled = true
	user.BiometricHash = hash.Hash
	user.BiometricSalt = hash.Salt
	user.BiometricWrappedKey = &wrapped
	return user
}

func TestAuthService_BiometricLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := enrolledUser(t, m.keyChain)

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
	m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("pk", nil)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
			assert.Equal(t, models.ActivityBiometricLogin, e.ActivityType)
			return nil
		})
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil)

	res, err := svc.BiometricLogin(ctx, models.BiometricLoginRequest{Email: testEmail, BiometricData: testSample}, testMeta)
	require.NoError(t, err)
	require.NotNil(t, res.WrappedMasterKey)
	assert.Equal(t, *user.BiometricWrappedKey, *res.WrappedMasterKey)

	token, err := svc.ParseToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AuthMethodBiometric, token.AuthMethod)
}

func TestAuthService_BiometricLogin_UsesEnrolledParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)

	// enrolled before the service moved to different biometric parameters
	older := crypto.NewKeyChainService(crypto.WithIterations(1000), crypto.WithBiometricParams(3, 1500))
	hash, err := older.HashBiometricData(testSample)
	require.NoError(t, err)

	user := enrolledUser(t, m.keyChain)
	user.BiometricHash = hash.Hash
	user.BiometricSalt = hash.Salt
	user.BiometricAlgorithm = hash.Algorithm
	user.BiometricRounds = hash.Rounds
	user.BiometricIterations = hash.Iterations

	m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
	m.users.EXPECT().ResetAttempts(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
	m.keys.EXPECT().FindActivePublicKey(gomock.Any(), user.UserID).Return("pk", nil)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil)
	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.Session{}, nil)

	_, err = svc.BiometricLogin(context.Background(),
		models.BiometricLoginRequest{Email: testEmail, BiometricData: testSample}, testMeta)
	require.NoError(t, err)
}

func TestAuthService_BiometricLogin_LocksAfterThreeFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	state := &userState{user: enrolledUser(t, m.keyChain)}
	state.expect(m)
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	wrong := models.BiometricLoginRequest{Email: testEmail, BiometricData: "not-the-enrolled-sample"}
	for i := 1; i <= 3; i++ {
		_, err := svc.BiometricLogin(ctx, wrong, testMeta)
		require.ErrorIs(t, err, ErrInvalidCredentials, "attempt %d", i)
	}
	require.NotNil(t, state.user.LockedUntil)
	assert.Equal(t, m.clock.now.Add(time.Hour), *state.user.LockedUntil)
	assert.Equal(t, []string{string(models.AuthMethodBiometric)}, m.lockouts.lockouts)

	_, err := svc.BiometricLogin(ctx, models.BiometricLoginRequest{Email: testEmail, BiometricData: testSample}, testMeta)
	var locked *AccountLockedError
	assert.ErrorAs(t, err, &locked)
}

func TestAuthService_BiometricLogin_NotEnrolled(t *testing.T) {
	t.Run("biometrics disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestAuthService(t, ctrl)
		user := testUser(t)

		m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(user, nil)
		m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
				require.NotNil(t, e.UserID)
				assert.Equal(t, user.UserID, *e.UserID)
				assert.True(t, e.IsSuspicious)
				return nil
			})

		_, err := svc.BiometricLogin(context.Background(), models.BiometricLoginRequest{Email: testEmail, BiometricData: testSample}, testMeta)
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestAuthService(t, ctrl)

		m.users.EXPECT().FindActiveByEmail(gomock.Any(), testEmail).Return(models.User{}, store.ErrUserNotFound)
		m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
				assert.Nil(t, e.UserID)
				return nil
			})

		_, err := svc.BiometricLogin(context.Background(), models.BiometricLoginRequest{Email: testEmail, BiometricData: testSample}, testMeta)
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}

func TestAuthService_EnrollBiometric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	user := testUser(t)
	wrapped, err := m.keyChain.Encrypt("master-key-hex", "device-secret")
	require.NoError(t, err)

	m.users.EXPECT().FindActiveByID(gomock.Any(), user.UserID).Return(user, nil)
	m.users.EXPECT().EnableBiometric(gomock.Any(), user.UserID, gomock.Any(), wrapped).
		DoAndReturn(func(_ context.Context, _ int64, hash models.BiometricHash, _ models.EncryptedBlob) error {
			assert.NotContains(t, hash.Hash, testSample)
			assert.Equal(t, 2, hash.Rounds)
			assert.Equal(t, 1000, hash.Iterations)
			assert.True(t, m.keyChain.VerifyBiometricData(testSample, hash))
			return nil
		})
	m.activity.EXPECT().LogActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ActivityLog) error {
			assert.Equal(t, models.ActivityBiometricEnrolled, e.ActivityType)
			return nil
		})

	err = svc.EnrollBiometric(context.Background(), user.UserID,
		models.BiometricEnrollRequest{BiometricData: testSample, WrappedMasterKey: wrapped}, testMeta)
	assert.NoError(t, err)
}

func TestAuthService_EnrollBiometric_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestAuthService(t, ctrl)

		err := svc.EnrollBiometric(context.Background(), 42, models.BiometricEnrollRequest{}, testMeta)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "biometricData")
		assert.Contains(t, verr.Fields, "wrappedMasterKey")
	})

	t.Run("deleted account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestAuthService(t, ctrl)
		wrapped, err := m.keyChain.Encrypt("master-key-hex", "device-secret")
		require.NoError(t, err)

		m.users.EXPECT().FindActiveByID(gomock.Any(), int64(42)).Return(models.User{}, store.ErrUserNotFound)

		err = svc.EnrollBiometric(context.Background(), 42,
			models.BiometricEnrollRequest{BiometricData: testSample, WrappedMasterKey: wrapped}, testMeta)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	foreign, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   testAuthConfig.TokenIssuer,
		UserID:   42,
		Email:    testEmail,
		Duration: time.Hour,
		SignKey:  "another-key",
		Now:      time.Now(),
	})
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   testAuthConfig.TokenIssuer,
		UserID:   42,
		Email:    testEmail,
		Duration: time.Minute,
		SignKey:  testAuthConfig.TokenSignKey,
		Now:      time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":       "not.a.jwt",
		"foreign key":   foreign.SignedString,
		"expired token": expired.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestRiskScore(t *testing.T) {
	assert.Equal(t, 20, riskScore(1))
	assert.Equal(t, 100, riskScore(5))
	assert.Equal(t, 140, riskScore(7))
}
