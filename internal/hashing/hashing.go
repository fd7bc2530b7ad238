// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hashing hashes observer PINs and admin passwords before they are
// compared with the stored values.
package hashing

import (
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"sync"

	"golang.org/x/text/encoding/unicode"

	"github.com/MKhiriev/vote-monitor/internal/config"
)

// Service turns a clear-text secret into its stored representation.
type Service interface {
	GetHash(clearText string) string
}

// New returns the service selected by cfg.ServiceType: "ClearText" keeps
// secrets unchanged, any other value selects salted SHA-256.
func New(cfg config.Hash) Service {
	if cfg.ServiceType == config.HashClearText {
		return NewClearTextService()
	}
	return NewSHA256Service(cfg.Salt)
}

type clearTextService struct{}

func NewClearTextService() Service {
	return clearTextService{}
}

func (clearTextService) GetHash(clearText string) string {
	return clearText
}

// sha256Service hashes the UTF-16LE encoding of clearText+salt and returns
// the digest in standard base64.
type sha256Service struct {
	salt string
	pool sync.Pool
}

func NewSHA256Service(salt string) Service {
	return &sha256Service{
		salt: salt,
		pool: sync.Pool{
			New: func() any { return sha256.New() },
		},
	}
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func (s *sha256Service) GetHash(clearText string) string {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(clearText + s.salt))
	if err != nil {
		// invalid UTF-8 is replaced, so the encoder does not fail in practice
		encoded = []byte(clearText + s.salt)
	}

	h := s.pool.Get().(hash.Hash)
	defer func() {
		h.Reset()
		s.pool.Put(h)
	}()

	h.Write(encoded)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
