package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/internal/adapter"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/internal/validators"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type clientAuthService struct {
	secrets  store.DeviceSecretRepository
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChainService
	keyring  *Keyring

	validator validators.Validator
}

func NewClientAuthService(secrets store.DeviceSecretRepository, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, keyring *Keyring) ClientAuthService {
	return &clientAuthService{
		secrets:   secrets,
		adapter:   serverAdapter,
		keyChain:  keyChain,
		keyring:   keyring,
		validator: validators.NewAuthValidator(),
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error) {
	req.Email = crypto.NormalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserInfo{}, asValidationError(err)
	}

	masterKey := a.keyChain.CreateMasterKey(req.Email, req.Password)
	defer masterKey.Zero()

	firstName, err := a.keyChain.Encrypt(req.FirstName, masterKey.Secret())
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("encrypting first name: %w", err)
	}
	lastName, err := a.keyChain.Encrypt(req.LastName, masterKey.Secret())
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("encrypting last name: %w", err)
	}

	pair, err := a.keyChain.GenerateKeyPair()
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("generating key pair: %w", err)
	}
	wrapped, err := a.keyChain.WrapPrivateKey(pair, masterKey)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("wrapping private key: %w", err)
	}

	res, err := a.adapter.Register(ctx, models.RegisterRequest{
		Email:              req.Email,
		Password:           req.Password,
		EncryptedFirstName: &firstName,
		EncryptedLastName:  &lastName,
		KeyPair:            &models.WrappedKeyPair{PublicKey: pair.PublicKey, EncryptedPrivateKey: wrapped},
	})
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	a.keyring.Unlock(req.Email, res.User.ID, masterKey)
	return res.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.UserInfo, error) {
	email = crypto.NormalizeEmail(email)

	res, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	masterKey := a.keyChain.CreateMasterKey(email, password)
	defer masterKey.Zero()

	a.keyring.Unlock(email, res.User.ID, masterKey)
	return res.User, nil
}

// BiometricLogin fails fast with ErrBiometricNotSetUp when this device holds
// no secret for email; the server is not contacted in that case.
func (a *clientAuthService) BiometricLogin(ctx context.Context, email, sample string) (models.UserInfo, error) {
	email = crypto.NormalizeEmail(email)

	secret, err := a.secrets.GetSecret(ctx, email)
	if errors.Is(err, store.ErrDeviceSecretAbsent) {
		return models.UserInfo{}, ErrBiometricNotSetUp
	}
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("reading device secret: %w", err)
	}

	res, err := a.adapter.BiometricLogin(ctx, models.BiometricLoginRequest{Email: email, BiometricData: sample})
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}
	if res.WrappedMasterKey == nil {
		return models.UserInfo{}, ErrNoWrappedKey
	}

	hexKey, err := a.keyChain.Decrypt(*res.WrappedMasterKey, secret)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("unwrapping master key: %w", err)
	}
	masterKey, err := crypto.ParseMasterKey(hexKey)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("unwrapping master key: %w", err)
	}
	defer masterKey.Zero()

	a.keyring.Unlock(email, res.User.ID, masterKey)
	return res.User, nil
}

// EnrollBiometric wraps the master key under a fresh device secret. The
// secret is saved only after the server accepted the enrollment.
func (a *clientAuthService) EnrollBiometric(ctx context.Context, sample string) error {
	masterKey, email, err := a.keyring.MasterKey()
	if err != nil {
		return err
	}
	defer masterKey.Zero()

	secret, err := crypto.GenerateSessionToken()
	if err != nil {
		return fmt.Errorf("generating device secret: %w", err)
	}

	wrapped, err := a.keyChain.Encrypt(masterKey.Secret(), secret)
	if err != nil {
		return fmt.Errorf("wrapping master key: %w", err)
	}

	if err := a.adapter.EnrollBiometric(ctx, models.BiometricEnrollRequest{
		BiometricData:    sample,
		WrappedMasterKey: wrapped,
	}); err != nil {
		return mapAdapterError(err)
	}

	if err := a.secrets.SaveSecret(ctx, email, secret); err != nil {
		return fmt.Errorf("saving device secret: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("biometric login enabled on this device")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context, email string) error {
	if email == "" {
		email = a.keyring.Email()
	}

	a.keyring.Clear()
	a.adapter.SetToken("")

	if email == "" {
		return nil
	}
	if err := a.secrets.DeleteSecret(ctx, crypto.NormalizeEmail(email)); err != nil {
		return fmt.Errorf("forgetting device secret: %w", err)
	}
	return nil
}
