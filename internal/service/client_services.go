package service

import (
	"github.com/MKhiriev/go-legacy-keeper/internal/adapter"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

type ClientServices struct {
	Keyring      *Keyring
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

// NewClientServices wires the client services around one shared keyring.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService) *ClientServices {
	keyring := NewKeyring()
	auth := NewClientAuthService(storages.DeviceSecretRepository, serverAdapter, keyChain, keyring)

	return &ClientServices{
		Keyring:      keyring,
		AuthService:  auth,
		VaultService: NewClientVaultService(storages.VaultRepository, keyChain, keyring, auth),
	}
}
