package service

import (
	"context"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

// ClientAuthService runs the device side of authentication. The master key is
// derived and held here; the server only ever receives the password (for its
// bcrypt check) and material already encrypted under the master key.
type ClientAuthService interface {
	// Register derives the master key, encrypts the names, generates and
	// wraps a key pair and creates the account. The keyring is unlocked on
	// success.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error)

	// Login authenticates on the server and unlocks the keyring with the
	// master key derived from the same credentials.
	Login(ctx context.Context, email, password string) (models.UserInfo, error)

	// BiometricLogin authenticates with a biometric sample and unwraps the
	// master key returned by the server with this device's secret.
	BiometricLogin(ctx context.Context, email, sample string) (models.UserInfo, error)

	// EnrollBiometric sets up biometric login on this device. The keyring
	// must be unlocked.
	EnrollBiometric(ctx context.Context, sample string) error

	// Logout locks the keyring, drops the token and forgets the device
	// secret of email, which disables biometric login here.
	Logout(ctx context.Context, email string) error
}

// ClientVaultService stores legacy records in the local vault. Every record
// is encrypted field by field and indexed with blinded tokens before it
// touches the disk.
type ClientVaultService interface {
	// Unlock derives the master key and checks it against the vault's key
	// check. The first unlock of an owner has no check yet: the password is
	// verified against an existing entry, or against the server when the
	// vault is empty, and the check is written afterwards.
	Unlock(ctx context.Context, email, password string) error

	AddRecord(ctx context.Context, record models.Record) (string, error)
	GetRecord(ctx context.Context, id string) (models.DecryptedRecord, error)
	ListRecords(ctx context.Context) ([]models.DecryptedRecord, error)

	// Search returns the records whose index holds every token of term.
	Search(ctx context.Context, term string) ([]models.DecryptedRecord, error)

	DeleteRecord(ctx context.Context, id string) error

	// GetAttachment decrypts the file attached to a document record.
	GetAttachment(ctx context.Context, id string) ([]byte, error)
}

// CredentialVerifier checks a password with the server. [ClientAuthService]
// implements it.
type CredentialVerifier interface {
	Login(ctx context.Context, email, password string) (models.UserInfo, error)
}
