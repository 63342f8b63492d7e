// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	data := "test-data"

	got := HashString(data, testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", want, got)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	hash1 := HashString("same-input", testHashKey)
	hash2 := HashString("same-input", testHashKey)

	if hash1 != hash2 {
		t.Errorf("same input must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

func TestHashString_DifferentInputs(t *testing.T) {
	hash1 := HashString("input-one", testHashKey)
	hash2 := HashString("input-two", testHashKey)

	if hash1 == hash2 {
		t.Error("different inputs must produce different hashes")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	hash1 := HashString("same-input", "key-one")
	hash2 := HashString("same-input", "key-two")

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same input")
	}
}

func TestDeviceFingerprint_Stable(t *testing.T) {
	fp1 := DeviceFingerprint("laptop-01", "alice@example.com")
	fp2 := DeviceFingerprint("laptop-01", "alice@example.com")

	if fp1 != fp2 {
		t.Errorf("same host and account must map to the same fingerprint:\n  fp1: %s\n  fp2: %s", fp1, fp2)
	}
	if len(fp1) != 16 {
		t.Errorf("expected 16-char fingerprint, got %d chars", len(fp1))
	}
}

func TestDeviceFingerprint_AccountBound(t *testing.T) {
	fp1 := DeviceFingerprint("laptop-01", "alice@example.com")
	fp2 := DeviceFingerprint("laptop-01", "bob@example.com")

	if fp1 == fp2 {
		t.Error("same host with different accounts must produce different fingerprints")
	}
}
