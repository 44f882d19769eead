package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	UsuarioIDKey ctxKey = "usuarioID"
	PerfilKey    ctxKey = "perfil"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UserID)
		ctx = context.WithValue(ctx, PerfilKey, claims.Perfil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func exigirPerfil(perfil string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, _ := r.Context().Value(PerfilKey).(string)
		if v != perfil {
			http.Error(w, "Acesso restrito ao perfil "+perfil, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireFornecedor(next http.Handler) http.Handler {
	return exigirPerfil(PerfilFornecedor, next)
}

func RequireCliente(next http.Handler) http.Handler {
	return exigirPerfil(PerfilCliente, next)
}

// UsuarioDoContexto retorna o ID autenticado injetado pelo middleware.
func UsuarioDoContexto(r *http.Request) uint {
	id, _ := r.Context().Value(UsuarioIDKey).(uint)
	return id
}
