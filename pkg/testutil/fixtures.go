package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestAdmin is the identity carried by tokens from NewTokenBuilder.
var TestAdmin = struct {
	ID       string
	Name     string
	UniqueID string
	Email    string
}{
	ID:       "adm_01HV7K",
	Name:     "Asha Verma",
	UniqueID: "PNADM0001",
	Email:    "asha@paynet.in",
}

// signingKey is irrelevant to the console, which never verifies signatures,
// but upstream fakes need a well-formed token.
var signingKey = []byte("paynet-test-signing-key")

// TokenBuilder mints admin session tokens shaped like the upstream login
// response.
type TokenBuilder struct {
	claims jwt.MapClaims
}

// NewTokenBuilder starts from TestAdmin with an expiry one hour after now.
func NewTokenBuilder(now time.Time) *TokenBuilder {
	return &TokenBuilder{claims: jwt.MapClaims{
		"id":        TestAdmin.ID,
		"name":      TestAdmin.Name,
		"unique_id": TestAdmin.UniqueID,
		"email":     TestAdmin.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}}
}

func (b *TokenBuilder) ExpiresAt(t time.Time) *TokenBuilder {
	b.claims["exp"] = t.Unix()
	return b
}

func (b *TokenBuilder) WithoutExpiry() *TokenBuilder {
	delete(b.claims, "exp")
	return b
}

// WithClaim sets or overrides any claim, including with a wrongly typed
// value to exercise shape validation.
func (b *TokenBuilder) WithClaim(name string, value any) *TokenBuilder {
	b.claims[name] = value
	return b
}

func (b *TokenBuilder) Without(name string) *TokenBuilder {
	delete(b.claims, name)
	return b
}

// Build signs the token. It panics on failure, which only happens for
// unencodable claim values.
func (b *TokenBuilder) Build() string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, b.claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return signed
}
