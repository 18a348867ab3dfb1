package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwkFor(kid string, pub *rsa.PublicKey) JSONWebKey {
	return JSONWebKey{
		Kid: kid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func jwksServer(t *testing.T, keys ...JSONWebKey) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: keys})
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestProviderKeyFunc(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, hits := jwksServer(t, jwkFor("k1", &priv.PublicKey))
	p := NewProvider(srv.URL)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	token.Header["kid"] = "k1"
	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, p.KeyFunc)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = jwt.Parse(signed, p.KeyFunc)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits), "cached key is reused")
}

func TestProviderUnknownKid(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv, _ := jwksServer(t, jwkFor("k1", &priv.PublicKey))
	p := NewProvider(srv.URL)

	_, err = p.Key(context.Background(), "other")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestProviderRejectsHMAC(t *testing.T) {
	p := NewProvider("http://127.0.0.1:0")
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u"}).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = jwt.Parse(signed, p.KeyFunc)
	assert.Error(t, err)
}

func TestProviderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewProvider(srv.URL).Key(context.Background(), "k1")
	assert.ErrorContains(t, err, "unexpected status 500")
}
