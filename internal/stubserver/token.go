package stubserver

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
)

// tokenIssuer mints and verifies the bearer tokens the stub hands out.
// HS256 with "sub" carrying the user id and "exp" the expiry, matching
// the production backend's shape. The client never inspects these; only
// the stub does.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &tokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *tokenIssuer) mint(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(userID),
		"exp": time.Now().Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// verify parses a token and returns the user id it was minted for.
func (t *tokenIssuer) verify(token string) (int, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, domain.ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	id, err := strconv.Atoi(sub)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", domain.ErrTokenInvalid)
	}
	return id, nil
}

// expirySeconds reports the ttl in whole seconds, for the login payload.
func (t *tokenIssuer) expirySeconds() int {
	return int(t.ttl / time.Second)
}
