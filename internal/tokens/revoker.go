package tokens

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Revoker materializa el sign-out con JWT sin estado: al cerrar sesión,
// el jti del token entra a una lista de revocados en Redis hasta que el
// token expire solo. Sin Redis configurado queda deshabilitado y el
// logout vuelve a ser "descartar el token en el cliente".
type Revoker struct {
	client *redis.Client
}

func NewRevoker(addr, password string) *Revoker {
	if addr == "" {
		return &Revoker{}
	}

	return &Revoker{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (r *Revoker) Enabled() bool {
	return r != nil && r.client != nil
}

// Revoke marca el token hasta su expiración. Tokens ya vencidos se ignoran.
func (r *Revoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if !r.Enabled() || jti == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return r.client.Set(ctx, key(jti), "1", ttl).Err()
}

// IsRevoked consulta la lista. Ante error de Redis se deja pasar el token:
// la revocación es mejor-esfuerzo, no puede tumbar toda la API.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) bool {
	if !r.Enabled() || jti == "" {
		return false
	}

	n, err := r.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func key(jti string) string {
	return "revoked_token:" + jti
}
