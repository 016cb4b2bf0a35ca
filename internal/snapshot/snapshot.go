/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/snapshot/snapshot.go
*/

// Package snapshot implements the C5 snapshot engine: atomic, checksummed
// serialization and restoration of the full keyspace to and from a file.
package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akashmaji946/mrdb/internal/store"
)

// file is the on-disk envelope: a gob-encoded record set plus the SHA-256
// digest of that encoding, so Load can detect truncation or corruption
// before it ever reaches the keyspace.
type file struct {
	Records []store.Record
	Digest  [sha256.Size]byte
}

// Save serializes every record in ks to path. It writes to a sibling temp
// file in the same directory, fsyncs it, verifies the digest by
// re-reading, and only then renames it onto path — so a crash or failure
// at any point before the rename leaves the original file untouched.
func Save(path string, ks *store.Keyspace) error {
	records := ks.Export()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	digest := sha256.Sum256(buf.Bytes())

	var envelope bytes.Buffer
	if err := gob.NewEncoder(&envelope).Encode(file{Records: records, Digest: digest}); err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mrdb-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(envelope.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := verifyDigest(tmpPath, digest); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func verifyDigest(path string, want [sha256.Size]byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reread temp file: %w", err)
	}
	var env file
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return fmt.Errorf("decode for verification: %w", err)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env.Records); err != nil {
		return fmt.Errorf("re-encode for verification: %w", err)
	}
	got := sha256.Sum256(buf.Bytes())
	if got != want || env.Digest != want {
		return fmt.Errorf("checksum mismatch after write")
	}
	return nil
}

// Load decodes path into a staging record set and, only on full success,
// swaps it into ks. On any failure ks is left untouched.
func Load(path string, ks *store.Keyspace) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open file %s: %w", path, err)
	}

	var env file
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env.Records); err != nil {
		return fmt.Errorf("re-encode for verification: %w", err)
	}
	if sha256.Sum256(buf.Bytes()) != env.Digest {
		return fmt.Errorf("checksum mismatch")
	}

	ks.Replace(env.Records)
	return nil
}
