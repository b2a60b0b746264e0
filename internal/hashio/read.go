package hashio

import (
	"crypto/md5" //nolint
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"strings"
)

const size = 512

const (
	NameMD5    = "md5"
	NameSHA1   = "sha1"
	NameSHA256 = "sha256"
)

var (
	ErrHasherNotFound = errors.New("hasher not found")
	ErrUnknownHasher  = errors.New("unknown hash alg")
)

// Hasher returns a fresh hash.Hash for every call
type Hasher func() hash.Hash

// ByName returns the hasher for md5, sha1 or sha256. An empty name selects md5
func ByName(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameMD5:
		return MD5(), nil
	case NameSHA1:
		return SHA1(), nil
	case NameSHA256:
		return SHA256(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}

// ReadAll reads r in blocks of the buffer size and returns the sum of everything read
func ReadAll(r io.Reader, hasher hash.Hash) ([]byte, error) {
	if _, err := io.CopyBuffer(hasher, r, make([]byte, size)); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return hasher.Sum(nil), nil
}

// ReadFile opens the file in the virtual file system and returns the sum of its content
func ReadFile(fsys fs.FS, fileName string, hasher Hasher) ([]byte, error) {
	if hasher == nil {
		return nil, ErrHasherNotFound
	}

	file, err := fsys.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", fileName, err)
	}
	defer file.Close()

	b, err := ReadAll(file, hasher())
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}

	return b, nil
}

func MD5() Hasher {
	return func() hash.Hash {
		return md5.New() //nolint
	}
}

func SHA1() Hasher {
	return func() hash.Hash {
		return sha1.New()
	}
}

func SHA256() Hasher {
	return func() hash.Hash {
		return sha256.New()
	}
}
