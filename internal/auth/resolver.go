package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredential = fmt.Errorf("%w: missing credential", entities.ErrUnauthenticated)
	ErrInvalidCredential = fmt.Errorf("%w: invalid credential", entities.ErrUnauthenticated)
	ErrMissingOwner      = fmt.Errorf("%w: credential has no owner claim", entities.ErrUnauthenticated)
)

// Resolver проверяет bearer токен и достаёт из него владельца и роль.
// Любая ошибка означает отказ: частичная личность не возвращается.
type Resolver struct {
	secret     []byte
	scheme     string
	ownerClaim string
	roleClaim  string
	parser     *jwt.Parser
}

func NewResolver(cfg config.Auth) *Resolver {
	return &Resolver{
		secret:     []byte(cfg.JWTSecret),
		scheme:     cfg.Scheme,
		ownerClaim: cfg.OwnerClaim,
		roleClaim:  cfg.RoleClaim,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (r *Resolver) Resolve(credential string) (entities.Identity, error) {
	raw := r.stripScheme(credential)
	if raw == "" {
		return entities.Identity{}, ErrMissingCredential
	}

	claims := jwt.MapClaims{}
	_, err := r.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil {
		return entities.Identity{}, errors.Join(ErrInvalidCredential, err)
	}

	owner, ok := claims[r.ownerClaim].(string)
	if !ok || strings.TrimSpace(owner) == "" {
		return entities.Identity{}, ErrMissingOwner
	}

	identity := entities.Identity{OwnerID: owner, Role: entities.RoleUser}
	if role, ok := claims[r.roleClaim].(string); ok && role != "" {
		identity.Role = entities.Role(role)
	}
	return identity, nil
}

// stripScheme убирает "Bearer " из значения заголовка. Токен без префикса тоже принимается.
func (r *Resolver) stripScheme(credential string) string {
	credential = strings.TrimSpace(credential)
	prefix := r.scheme + " "
	if len(credential) >= len(prefix) && strings.EqualFold(credential[:len(prefix)], prefix) {
		credential = credential[len(prefix):]
	}
	return strings.TrimSpace(credential)
}
