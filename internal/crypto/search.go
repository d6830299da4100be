// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-legacy-keeper/models"
	"golang.org/x/crypto/hkdf"
)

const (
	// IndexVersion identifies the tokenizer and blinding scheme below.
	// Records indexed with another version are never matched.
	IndexVersion = 1

	// minTokenRunes is the shortest token that is indexed.
	minTokenRunes = 3

	// blindTokenHexLen keeps 128 bits of the HMAC output.
	blindTokenHexLen = 32

	indexKeyInfo = "search-index-v1"
)

// Tokenize splits text into index terms: lower-cased, split on whitespace,
// stripped of leading and trailing punctuation, at least three runes long and
// de-duplicated in first-seen order. Queries go through the same function.
func Tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.TrimFunc(w, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if utf8.RuneCountInString(w) < minTokenRunes {
			continue
		}
		if slices.Contains(tokens, w) {
			continue
		}
		tokens = append(tokens, w)
	}

	return tokens
}

// CreateSearchableIndex implements [KeyChainService].
func (k *keyChainService) CreateSearchableIndex(text string, masterKey MasterKey) (models.SearchableRecord, error) {
	indexKey, err := deriveIndexKey(masterKey)
	if err != nil {
		return models.SearchableRecord{}, err
	}
	defer ZeroBytes(indexKey)

	blob, err := k.Encrypt(text, masterKey.Secret())
	if err != nil {
		return models.SearchableRecord{}, err
	}

	terms := Tokenize(text)
	index := make([]string, 0, len(terms))
	for _, term := range terms {
		index = append(index, blindToken(indexKey, term))
	}

	return models.SearchableRecord{
		EncryptedData: blob,
		SearchIndex:   index,
		IndexVersion:  IndexVersion,
	}, nil
}

// SearchEncryptedData implements [KeyChainService]. A multi-word term matches
// only records containing every one of its tokens. A term with no indexable
// token matches nothing.
func (k *keyChainService) SearchEncryptedData(term string, records []models.SearchableRecord, masterKey MasterKey) ([]models.SearchableRecord, error) {
	terms := Tokenize(term)
	if len(terms) == 0 {
		return []models.SearchableRecord{}, nil
	}

	indexKey, err := deriveIndexKey(masterKey)
	if err != nil {
		return nil, err
	}
	defer ZeroBytes(indexKey)

	wanted := make([]string, 0, len(terms))
	for _, t := range terms {
		wanted = append(wanted, blindToken(indexKey, t))
	}

	matches := make([]models.SearchableRecord, 0)
	for _, rec := range records {
		if rec.IndexVersion != IndexVersion {
			continue
		}
		if containsAll(rec.SearchIndex, wanted) {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}

func deriveIndexKey(masterKey MasterKey) ([]byte, error) {
	if len(masterKey) == 0 {
		return nil, ErrInvalidMasterKey
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(indexKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive index key: %w", err)
	}
	return key, nil
}

func blindToken(indexKey []byte, term string) string {
	mac := hmac.New(sha256.New, indexKey)
	mac.Write([]byte(term))
	return hex.EncodeToString(mac.Sum(nil))[:blindTokenHexLen]
}

func containsAll(index, wanted []string) bool {
	for _, w := range wanted {
		if !slices.Contains(index, w) {
			return false
		}
	}
	return true
}
