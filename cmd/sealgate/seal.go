package main

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mr-tron/base58"
	"github.com/pierrec/lz4/v4"
	"github.com/urfave/cli/v2"

	"github.com/sealgate/sealgate/aead"
)

// Sealed file layout: magic (4) || flags (1) || nonce (12) || ciphertext.
// The magic and flags bytes are bound as associated data, so stripping or
// flipping the compression flag fails authentication.
var magic = []byte("SBX1")

const (
	flagLZ4 byte = 1 << 0

	headerLen = 5
)

// errOpenFailed is deliberately uninformative: a corrupt file, a wrong key,
// and a tampered header all look the same to the caller.
var errOpenFailed = errors.New("open: cannot open sealed file")

var keyFlag = &cli.StringFlag{
	Name:     "key",
	Usage:    "base58-encoded 32-byte key (see keygen)",
	Required: true,
}

var keygenCommand = &cli.Command{
	Name:   "keygen",
	Usage:  "generate a random 32-byte key and print it as base58",
	Action: keygenCmd,
}

var sealCommand = &cli.Command{
	Name:      "seal",
	Usage:     "encrypt and authenticate a file",
	ArgsUsage: "INPUT OUTPUT",
	Flags: []cli.Flag{
		keyFlag,
		&cli.BoolFlag{
			Name:  "lz4",
			Usage: "compress the plaintext before sealing",
		},
	},
	Action: sealCmd,
}

var openCommand = &cli.Command{
	Name:      "open",
	Usage:     "verify and decrypt a sealed file",
	ArgsUsage: "INPUT OUTPUT",
	Flags:     []cli.Flag{keyFlag},
	Action:    openCmd,
}

func keygenCmd(c *cli.Context) error {
	key := make([]byte, aead.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	fmt.Println(base58.Encode(key))
	return nil
}

func sealCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("seal: want INPUT and OUTPUT arguments")
	}
	key, err := decodeKey(c.String("key"))
	if err != nil {
		return err
	}
	n, err := sealFile(key, c.Args().Get(0), c.Args().Get(1), c.Bool("lz4"))
	if err != nil {
		return err
	}
	logger.Info().Str("file", c.Args().Get(1)).Int("bytes", n).Msg("sealed")
	return nil
}

func openCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("open: want INPUT and OUTPUT arguments")
	}
	key, err := decodeKey(c.String("key"))
	if err != nil {
		return err
	}
	n, err := openFile(key, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	logger.Info().Str("file", c.Args().Get(1)).Int("bytes", n).Msg("opened")
	return nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) != aead.KeySize {
		return nil, fmt.Errorf("key is %d bytes, want %d", len(key), aead.KeySize)
	}
	return key, nil
}

// sealFile seals the file at in to out and returns the sealed size.
// The nonce is drawn fresh from crypto/rand for every call.
func sealFile(key []byte, in, out string, compressPlain bool) (int, error) {
	plaintext, err := os.ReadFile(in)
	if err != nil {
		return 0, err
	}

	var flags byte
	if compressPlain {
		compressed, err := compress(plaintext)
		if err != nil {
			return 0, err
		}
		plaintext = compressed
		flags |= flagLZ4
	}

	header := make([]byte, headerLen)
	copy(header, magic)
	header[4] = flags

	nonce := make([]byte, aead.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return 0, err
	}

	ciphertext := make([]byte, len(plaintext)+aead.TagSize)
	n, err := aead.Encrypt(ciphertext, plaintext, header, nonce, key)
	if err != nil {
		return 0, fmt.Errorf("seal: %w", err)
	}

	sealed := make([]byte, 0, headerLen+aead.NonceSize+n)
	sealed = append(sealed, header...)
	sealed = append(sealed, nonce...)
	sealed = append(sealed, ciphertext[:n]...)
	if err := os.WriteFile(out, sealed, 0o600); err != nil {
		return 0, err
	}
	return len(sealed), nil
}

// openFile verifies and opens the sealed file at in, writing the plaintext
// to out and returning its size.
func openFile(key []byte, in, out string) (int, error) {
	sealed, err := os.ReadFile(in)
	if err != nil {
		return 0, err
	}
	if len(sealed) < headerLen+aead.NonceSize+aead.TagSize || !bytes.Equal(sealed[:4], magic) {
		return 0, errOpenFailed
	}
	header := sealed[:headerLen]
	nonce := sealed[headerLen : headerLen+aead.NonceSize]
	ciphertext := sealed[headerLen+aead.NonceSize:]

	plaintext := make([]byte, len(ciphertext)-aead.TagSize)
	n, err := aead.Decrypt(plaintext, ciphertext, header, nonce, key)
	if err != nil {
		return 0, errOpenFailed
	}
	plaintext = plaintext[:n]

	if header[4]&flagLZ4 != 0 {
		plaintext, err = decompress(plaintext)
		if err != nil {
			return 0, errOpenFailed
		}
	}
	if err := os.WriteFile(out, plaintext, 0o600); err != nil {
		return 0, err
	}
	return len(plaintext), nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
