// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

const (
	// DefaultIterations is the PBKDF2 iteration count for ordinary
	// encryption.
	DefaultIterations = 100_000

	// MasterKeyIterations is used when deriving the master key from the
	// user's credentials.
	MasterKeyIterations = 150_000

	// BiometricRounds is the number of chained SHA3-512 passes.
	BiometricRounds = 10

	// BiometricIterations is the PBKDF2-SHA512 stretch applied after the
	// chained hash.
	BiometricIterations = 200_000

	// RSABits is the modulus size of generated key pairs.
	RSABits = 2048
)

// keyChainService is the private implementation of [KeyChainService]. Its
// fields are tuning parameters fixed at construction; it holds no key
// material.
type keyChainService struct {
	iterations          int
	masterKeyIterations int
	biometricRounds     int
	biometricIterations int
	rsaBits             int
}

// Option adjusts a tuning parameter of the key chain.
type Option func(*keyChainService)

// WithIterations overrides the PBKDF2 iteration count used by Encrypt.
func WithIterations(n int) Option {
	return func(k *keyChainService) { k.iterations = n }
}

// WithMasterKeyIterations overrides the iteration count of CreateMasterKey.
func WithMasterKeyIterations(n int) Option {
	return func(k *keyChainService) { k.masterKeyIterations = n }
}

// WithBiometricParams overrides the round and PBKDF2 iteration counts of the
// biometric pipeline.
func WithBiometricParams(rounds, iterations int) Option {
	return func(k *keyChainService) {
		k.biometricRounds = rounds
		k.biometricIterations = iterations
	}
}

// WithRSABits overrides the modulus size of GenerateKeyPair.
func WithRSABits(bits int) Option {
	return func(k *keyChainService) { k.rsaBits = bits }
}

// NewKeyChainService constructs a [KeyChainService] with the production
// parameters:
//   - 100 000 PBKDF2-SHA256 iterations for blobs;
//   - 150 000 for the credential-derived master key;
//   - 10 SHA3-512 rounds and 200 000 PBKDF2-SHA512 iterations for biometrics;
//   - 2048-bit RSA.
//
// Options are meant for tests and constrained devices.
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		iterations:          DefaultIterations,
		masterKeyIterations: MasterKeyIterations,
		biometricRounds:     BiometricRounds,
		biometricIterations: BiometricIterations,
		rsaBits:             RSABits,
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}
