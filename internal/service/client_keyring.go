package service

import (
	"sync"

	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
)

// Keyring holds the unlocked master key of the signed-in user for the
// lifetime of the client process. It is never persisted.
type Keyring struct {
	mu        sync.RWMutex
	email     string
	userID    int64
	masterKey crypto.MasterKey
}

func NewKeyring() *Keyring {
	return &Keyring{}
}

// Unlock stores a copy of masterKey, zeroing any key held before.
func (k *Keyring) Unlock(email string, userID int64, masterKey crypto.MasterKey) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.masterKey.Zero()
	k.email = email
	k.userID = userID
	k.masterKey = append(crypto.MasterKey(nil), masterKey...)
}

// MasterKey returns a copy of the key and the owner's email. The caller
// zeroes the copy when done.
func (k *Keyring) MasterKey() (crypto.MasterKey, string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.masterKey) == 0 {
		return nil, "", ErrVaultLocked
	}
	return append(crypto.MasterKey(nil), k.masterKey...), k.email, nil
}

func (k *Keyring) Email() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.email
}

func (k *Keyring) UserID() int64 {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.userID
}

func (k *Keyring) IsUnlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.masterKey) > 0
}

// Clear zeroes the key and forgets the owner.
func (k *Keyring) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.masterKey.Zero()
	k.masterKey = nil
	k.email = ""
	k.userID = 0
}
