package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/internal/validators"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once at construction. Unknown emails are compared
// against it so their response time matches a wrong password.
const dummyPassword = "legacy-keeper/unknown-account"

// dummyBiometric stands in for the stored hash when an account has no
// biometric enrolled. It can never match.
var dummyBiometric = models.BiometricHash{
	Hash:      strings.Repeat("0", 128),
	Salt:      strings.Repeat("0", 128),
	Algorithm: models.BiometricAlgorithm,
}

// authService is the concrete implementation of AuthService.
//
// Login ordering is fixed: lookup, lock check, credential verification, then
// either the atomic failure update or reset + tokens + session. The session
// row is always the last write.
type authService struct {
	users    store.UserRepository
	keys     store.KeyRepository
	sessions store.SessionRepository
	tx       store.TxManager
	audit    auditor

	keyChain  crypto.KeyChainService
	validator validators.Validator
	tokens    tokenIssuer

	passwordPolicy  LockoutPolicy
	biometricPolicy LockoutPolicy

	bcryptCost int
	dummyHash  []byte

	now     func() time.Time
	metrics metrics.BusinessMetrics
	logger  *logger.Logger
}

// AuthOption customises an auth service.
type AuthOption func(*authService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) { s.now = now }
}

// WithLockoutMetrics reports every lock that is set.
func WithLockoutMetrics(m metrics.BusinessMetrics) AuthOption {
	return func(s *authService) { s.metrics = m }
}

// NewAuthService constructs an AuthService over the server storages.
//
// cfg is expected to be validated already: the bcrypt cost, token sign key
// and lockout policies are used as given.
func NewAuthService(storages *store.Storages, keyChain crypto.KeyChainService, cfg config.Auth, logger *logger.Logger, opts ...AuthOption) AuthService {
	s := &authService{
		users:     storages.UserRepository,
		keys:      storages.KeyRepository,
		sessions:  storages.SessionRepository,
		tx:        storages.TxManager,
		audit:     auditor{repo: storages.ActivityRepository},
		keyChain:  keyChain,
		validator: validators.NewAuthValidator(),
		tokens: tokenIssuer{
			signKey:    cfg.TokenSignKey,
			issuer:     cfg.TokenIssuer,
			accessTTL:  cfg.AccessTokenDuration,
			refreshTTL: cfg.RefreshTokenDuration,
		},
		passwordPolicy:  NewLockoutPolicy(cfg.PasswordLockout),
		biometricPolicy: NewLockoutPolicy(cfg.BiometricLockout),
		bcryptCost:      cfg.BcryptCost,
		now:             time.Now,
		metrics:         metrics.NewNoOpBusinessMetrics(),
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), s.bcryptCost)
	if err != nil {
		logger.Err(err).Msg("cannot prepare dummy password hash, unknown-email timing will differ")
	}
	s.dummyHash = dummy

	return s
}

// Register implements [AuthService].
//
// The master key is taken from the request when the client derived it,
// otherwise derived here from the credentials, used to encrypt the names and
// wrap the private key, and zeroed before returning. It is never stored.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest, meta models.ClientMeta) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = crypto.NormalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, asValidationError(err)
	}

	exists, err := s.users.ExistsActiveByEmail(ctx, req.Email)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return models.AuthResult{}, ErrDuplicateAccount
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("hashing password: %w", err)
	}

	masterKey, err := s.resolveMasterKey(req)
	if err != nil {
		return models.AuthResult{}, err
	}
	defer masterKey.Zero()

	firstName, err := s.encryptedOrEncrypt(req.EncryptedFirstName, req.FirstName, masterKey)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("encrypting first name: %w", err)
	}
	lastName, err := s.encryptedOrEncrypt(req.EncryptedLastName, req.LastName, masterKey)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("encrypting last name: %w", err)
	}

	key, err := s.resolveKeyPair(req, masterKey)
	if err != nil {
		return models.AuthResult{}, err
	}

	user := models.User{
		Email:                   req.Email,
		PasswordHash:            string(passwordHash),
		EncryptedFirstName:      firstName,
		EncryptedLastName:       lastName,
		EncryptionSalt:          firstName.Salt,
		EncryptionIV:            firstName.IV,
		KeyDerivationIterations: firstName.Iterations,
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.users.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		user = created

		key.UserID = created.UserID
		_, err = s.keys.CreateKey(ctx, key)
		return err
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrDuplicateAccount
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("creating account: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("account registered")

	now := s.now()
	issued, err := s.tokens.issue(user, models.AuthMethodPassword, meta, now)
	if err != nil {
		return models.AuthResult{}, err
	}

	s.audit.success(ctx, user.UserID, models.ActivityRegistration, "account created", meta)

	if _, err := s.sessions.CreateSession(ctx, issued.session); err != nil {
		return models.AuthResult{}, fmt.Errorf("creating session: %w", err)
	}

	return models.AuthResult{
		User:         userInfo(user),
		Token:        issued.access.SignedString,
		RefreshToken: issued.refresh,
		PublicKey:    key.PublicKey,
	}, nil
}

// resolveMasterKey returns nil when the client encrypted everything itself.
func (s *authService) resolveMasterKey(req models.RegisterRequest) (crypto.MasterKey, error) {
	if req.MasterKey == "" && req.EncryptedFirstName != nil && req.EncryptedLastName != nil && req.KeyPair != nil {
		return nil, nil
	}
	if req.MasterKey == "" {
		return s.keyChain.CreateMasterKey(req.Email, req.Password), nil
	}

	masterKey, err := crypto.ParseMasterKey(req.MasterKey)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"masterKey": "must be 64 hex characters"}}
	}
	return masterKey, nil
}

func (s *authService) encryptedOrEncrypt(supplied *models.EncryptedBlob, plain string, masterKey crypto.MasterKey) (models.EncryptedBlob, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return s.keyChain.Encrypt(plain, masterKey.Secret())
}

func (s *authService) resolveKeyPair(req models.RegisterRequest, masterKey crypto.MasterKey) (models.UserEncryptionKey, error) {
	key := models.UserEncryptionKey{
		KeyType:   models.KeyTypeRSA,
		Algorithm: models.KeyAlgorithmRSA,
		KeySize:   models.KeySizeRSA,
		IsActive:  true,
	}

	if req.KeyPair != nil {
		key.PublicKey = req.KeyPair.PublicKey
		key.EncryptedPrivateKey = req.KeyPair.EncryptedPrivateKey
		return key, nil
	}

	pair, err := s.keyChain.GenerateKeyPair()
	if err != nil {
		return models.UserEncryptionKey{}, fmt.Errorf("generating key pair: %w", err)
	}
	wrapped, err := s.keyChain.WrapPrivateKey(pair, masterKey)
	if err != nil {
		return models.UserEncryptionKey{}, fmt.Errorf("wrapping private key: %w", err)
	}

	key.PublicKey = pair.PublicKey
	key.EncryptedPrivateKey = wrapped
	return key, nil
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, req models.LoginRequest, meta models.ClientMeta) (models.AuthResult, error) {
	req.Email = crypto.NormalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, asValidationError(err)
	}

	now := s.now()

	user, err := s.users.FindActiveByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		s.audit.suspicious(ctx, nil, models.ActivityLoginFailed, "login attempt for unknown email", riskScore(1), meta)
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("loading account: %w", err)
	}

	if user.IsLocked(now) {
		return models.AuthResult{}, s.rejectLocked(ctx, user, meta)
	}

	verified := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	if verified && user.BiometricEnabled && req.BiometricData != "" {
		verified = s.keyChain.VerifyBiometricData(req.BiometricData, user.StoredBiometric())
	}
	if !verified {
		return models.AuthResult{}, s.recordFailure(ctx, user, models.AuthMethodPassword, s.passwordPolicy, meta, now)
	}

	return s.completeLogin(ctx, user, models.AuthMethodPassword, meta, now)
}

// BiometricLogin implements [AuthService]. An unknown email and an account
// without biometrics produce the same outcome.
func (s *authService) BiometricLogin(ctx context.Context, req models.BiometricLoginRequest, meta models.ClientMeta) (models.AuthResult, error) {
	req.Email = crypto.NormalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, asValidationError(err)
	}

	now := s.now()

	user, err := s.users.FindActiveByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return models.AuthResult{}, fmt.Errorf("loading account: %w", err)
	}
	if errors.Is(err, store.ErrUserNotFound) || !user.BiometricEnabled {
		s.keyChain.VerifyBiometricData(req.BiometricData, dummyBiometric)

		var userID *int64
		if err == nil {
			userID = &user.UserID
		}
		s.audit.suspicious(ctx, userID, models.ActivityLoginFailed, "biometric login without enrollment", riskScore(1), meta)
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if user.IsLocked(now) {
		return models.AuthResult{}, s.rejectLocked(ctx, user, meta)
	}

	if !s.keyChain.VerifyBiometricData(req.BiometricData, user.StoredBiometric()) {
		return models.AuthResult{}, s.recordFailure(ctx, user, models.AuthMethodBiometric, s.biometricPolicy, meta, now)
	}

	return s.completeLogin(ctx, user, models.AuthMethodBiometric, meta, now)
}

// rejectLocked answers an attempt on a locked account. The counter is left
// untouched.
func (s *authService) rejectLocked(ctx context.Context, user models.User, meta models.ClientMeta) error {
	s.audit.suspicious(ctx, &user.UserID, models.ActivityLoginLocked, "login attempt on locked account", riskScore(user.LoginAttempts), meta)
	return &AccountLockedError{Until: *user.LockedUntil}
}

// recordFailure performs the atomic counter update. The attempt that crosses
// the threshold still answers with invalid credentials; the lock shows on the
// next attempt.
func (s *authService) recordFailure(ctx context.Context, user models.User, method models.AuthMethod, policy LockoutPolicy, meta models.ClientMeta, now time.Time) error {
	log := logger.FromContext(ctx)

	state, err := s.users.RecordFailedAttempt(ctx, user.UserID, policy.Threshold, policy.LockUntil(now))
	if err != nil {
		return fmt.Errorf("recording failed attempt: %w", err)
	}

	s.audit.suspicious(ctx, &user.UserID, models.ActivityLoginFailed,
		fmt.Sprintf("failed %s login, attempt %d", method, state.LoginAttempts),
		riskScore(state.LoginAttempts), meta)

	if state.LoginAttempts >= policy.Threshold && state.LockedUntil != nil && state.LockedUntil.After(now) {
		log.Warn().
			Int64("user_id", user.UserID).
			Str("method", string(method)).
			Time("locked_until", *state.LockedUntil).
			Msg("account locked")
		s.metrics.RecordLockout(ctx, string(method))
	}

	return ErrInvalidCredentials
}

func (s *authService) completeLogin(ctx context.Context, user models.User, method models.AuthMethod, meta models.ClientMeta, now time.Time) (models.AuthResult, error) {
	if err := s.users.ResetAttempts(ctx, user.UserID, now); err != nil {
		return models.AuthResult{}, fmt.Errorf("resetting attempts: %w", err)
	}
	user.LastLogin = &now

	issued, err := s.tokens.issue(user, method, meta, now)
	if err != nil {
		return models.AuthResult{}, err
	}

	publicKey, err := s.keys.FindActivePublicKey(ctx, user.UserID)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return models.AuthResult{}, fmt.Errorf("loading public key: %w", err)
	}

	activity := models.ActivityLogin
	if method == models.AuthMethodBiometric {
		activity = models.ActivityBiometricLogin
	}
	s.audit.success(ctx, user.UserID, activity, "successful "+string(method)+" login", meta)

	if _, err := s.sessions.CreateSession(ctx, issued.session); err != nil {
		return models.AuthResult{}, fmt.Errorf("creating session: %w", err)
	}

	result := models.AuthResult{
		User:         userInfo(user),
		Token:        issued.access.SignedString,
		RefreshToken: issued.refresh,
		PublicKey:    publicKey,
	}
	if method == models.AuthMethodBiometric {
		result.WrappedMasterKey = user.BiometricWrappedKey
	}

	return result, nil
}

// EnrollBiometric implements [AuthService].
func (s *authService) EnrollBiometric(ctx context.Context, userID int64, req models.BiometricEnrollRequest, meta models.ClientMeta) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return asValidationError(err)
	}

	if _, err := s.users.FindActiveByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrTokenIsExpiredOrInvalid
		}
		return fmt.Errorf("loading account: %w", err)
	}

	hash, err := s.keyChain.HashBiometricData(req.BiometricData)
	if err != nil {
		return fmt.Errorf("hashing biometric sample: %w", err)
	}

	if err := s.users.EnableBiometric(ctx, userID, hash, req.WrappedMasterKey); err != nil {
		return fmt.Errorf("enabling biometric: %w", err)
	}

	s.audit.success(ctx, userID, models.ActivityBiometricEnrolled, "biometric enrolled", meta)
	return nil
}

// ParseToken implements [AuthService]. Any validation failure is reported
// as ErrTokenIsExpiredOrInvalid.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.tokens.parse(tokenString)
}

func userInfo(u models.User) models.UserInfo {
	return models.UserInfo{
		ID:        u.UserID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func asValidationError(err error) error {
	var fields validators.FieldErrors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return err
}
