// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"strconv"

	"github.com/MKhiriev/go-legacy-keeper/models"
	"golang.org/x/crypto/sha3"
)

const (
	biometricSaltSize = 64
	biometricHashSize = 64
)

// HashBiometricData implements [KeyChainService]. The sample is chained
// through SHA3-512 rounds, each salted with salt+roundIndex, and the result is
// stretched with PBKDF2-SHA512 into a 512-bit hash.
func (k *keyChainService) HashBiometricData(sample string) (models.BiometricHash, error) {
	saltBytes, err := randomBytes(biometricSaltSize)
	if err != nil {
		return models.BiometricHash{}, err
	}
	salt := hex.EncodeToString(saltBytes)

	return models.BiometricHash{
		Hash:       biometricDigest(sample, salt, k.biometricRounds, k.biometricIterations),
		Salt:       salt,
		Algorithm:  models.BiometricAlgorithm,
		Rounds:     k.biometricRounds,
		Iterations: k.biometricIterations,
	}, nil
}

// VerifyBiometricData implements [KeyChainService]. A stored hash without
// rounds or iterations is verified with the service's configured values.
func (k *keyChainService) VerifyBiometricData(sample string, stored models.BiometricHash) bool {
	if stored.Hash == "" || stored.Salt == "" {
		return false
	}
	if stored.Algorithm != "" && stored.Algorithm != models.BiometricAlgorithm {
		return false
	}

	rounds, iterations := stored.Rounds, stored.Iterations
	if rounds <= 0 {
		rounds = k.biometricRounds
	}
	if iterations <= 0 {
		iterations = k.biometricIterations
	}
	if iterations > maxIterations {
		return false
	}

	computed := biometricDigest(sample, stored.Salt, rounds, iterations)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored.Hash)) == 1
}

func biometricDigest(sample, salt string, rounds, iterations int) string {
	h := sample
	for i := 0; i < rounds; i++ {
		sum := sha3.Sum512([]byte(h + salt + strconv.Itoa(i)))
		h = hex.EncodeToString(sum[:])
	}

	return hex.EncodeToString(DeriveKeySHA512(h, []byte(salt), iterations, biometricHashSize))
}
