package ibe

import (
	"bytes"
	"testing"

	"github.com/rfc5091/cryptid/params"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	kgc, err := Setup(params.Level0, nil)
	require.NoError(t, err)

	id := []byte("alice@example.com")
	sk, err := kgc.Extract(id)
	require.NoError(t, err)

	message := []byte("the quick brown fox jumps over the lazy dog")
	ct, err := kgc.Encrypt(message, id)
	require.NoError(t, err)

	recipient := NewRecipient(kgc.Params, sk, nil)
	recovered, err := recipient.Decrypt(ct)
	require.NoError(t, err)
	require.True(t, bytes.Equal(message, recovered))
}

func TestEncryptDecryptRoundTripLevel1(t *testing.T) {
	kgc, err := Setup(params.Level1, nil)
	require.NoError(t, err)

	id := []byte("bob@example.com")
	sk, err := kgc.Extract(id)
	require.NoError(t, err)

	message := []byte("a message encrypted under the higher Level1 parameters")
	ct, err := kgc.Encrypt(message, id)
	require.NoError(t, err)

	recipient := NewRecipient(kgc.Params, sk, nil)
	recovered, err := recipient.Decrypt(ct)
	require.NoError(t, err)
	require.True(t, bytes.Equal(message, recovered))
}

func TestDecryptWithWrongIdentityFails(t *testing.T) {
	kgc, err := Setup(params.Level0, nil)
	require.NoError(t, err)

	message := []byte("top secret")
	ct, err := kgc.Encrypt(message, []byte("alice@example.com"))
	require.NoError(t, err)

	wrongKey, err := kgc.Extract([]byte("mallory@example.com"))
	require.NoError(t, err)

	recipient := NewRecipient(kgc.Params, wrongKey, nil)
	_, err = recipient.Decrypt(ct)
	require.Error(t, err)
}

func TestDecryptWithTamperedCiphertextFails(t *testing.T) {
	kgc, err := Setup(params.Level0, nil)
	require.NoError(t, err)

	id := []byte("alice@example.com")
	sk, err := kgc.Extract(id)
	require.NoError(t, err)

	ct, err := kgc.Encrypt([]byte("top secret"), id)
	require.NoError(t, err)
	ct.W[0] ^= 0xFF

	recipient := NewRecipient(kgc.Params, sk, nil)
	_, err = recipient.Decrypt(ct)
	require.Error(t, err)
}

func TestCiphertextMarshalRoundTrip(t *testing.T) {
	kgc, err := Setup(params.Level0, nil)
	require.NoError(t, err)

	ct, err := kgc.Encrypt([]byte("payload"), []byte("alice@example.com"))
	require.NoError(t, err)

	data := ct.Marshal()
	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ct.V, decoded.V))
	require.True(t, bytes.Equal(ct.W, decoded.W))
	require.Equal(t, 0, ct.U.X.Cmp(decoded.U.X))
	require.Equal(t, 0, ct.U.Y.Cmp(decoded.U.Y))
}

func TestExtractRejectsEmptyIdentity(t *testing.T) {
	kgc, err := Setup(params.Level0, nil)
	require.NoError(t, err)

	_, err = kgc.Extract([]byte{})
	require.Error(t, err)
}
