package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtop/marmoleria-api/internal/application/auth"
	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/navigation"
	"github.com/newtop/marmoleria-api/internal/infrastructure/memory"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

const (
	adminEmail    = "admin@newtop.com"
	adminPassword = "admin123"
)

type failingStore struct{ *memory.SessionStore }

func (failingStore) Save(context.Context, string, []byte) error { return errors.New("disco lleno") }

func jwtCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "newtop-test"}
}

func newGate(t *testing.T, users *memory.UserRepo, store *memory.SessionStore) *auth.Gate {
	t.Helper()
	g := auth.NewGate(users, store, jwtCfg(), 0, logger.Nop(), ports.NopRecorder{})
	require.NoError(t, g.SeedAdmin(adminEmail, adminPassword, "Vendedor"))
	return g
}

func login(t *testing.T, g *auth.Gate, from string) *dto.LoginResponse {
	t.Helper()
	out, err := g.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword, From: from})
	require.NoError(t, err)
	return out
}

// ── Login / logout ──────────────────────────────────────────────────────────

func TestLogin_AdminRedirigeAFrom(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	out := login(t, g, "/inventario")

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "/inventario", out.RedirectTo)
	assert.True(t, g.IsAdmin())
	assert.Equal(t, navigation.AuthenticatedAdmin, g.State())

	sess, err := g.Authenticate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, sess.User.Email)
}

func TestLogin_FalloNoCambiaLaSesion(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	first := login(t, g, "")

	_, err := g.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: "incorrecta"})
	var authErr domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AuthBadPassword, authErr.Reason)

	_, err = g.Login(context.Background(), dto.LoginRequest{Email: "nadie@newtop.com", Password: "x"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = g.Authenticate(first.Token)
	assert.NoError(t, err, "el token de la sesión previa sigue vigente")
}

func TestLogin_NuevaSesionInvalidaLaAnterior(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	first := login(t, g, "")
	second := login(t, g, "")

	_, err := g.Authenticate(first.Token)
	var authErr domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AuthSessionReplaced, authErr.Reason)

	_, err = g.Authenticate(second.Token)
	assert.NoError(t, err)
}

func TestLogin_SlotFallaNoCambiaSesion(t *testing.T) {
	users := memory.NewUserRepository()
	store := memory.NewSessionStore()
	g := newGate(t, users, store)
	first := login(t, g, "")

	broken := auth.NewGate(users, failingStore{store}, jwtCfg(), 0, logger.Nop(), ports.NopRecorder{})
	_, err := broken.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.Error(t, err)
	assert.Nil(t, broken.Session())

	_, err = g.Authenticate(first.Token)
	assert.NoError(t, err)
}

func TestLogin_CanceladoDuranteLaEspera(t *testing.T) {
	users := memory.NewUserRepository()
	g := auth.NewGate(users, memory.NewSessionStore(), jwtCfg(), time.Minute, logger.Nop(), ports.NopRecorder{})
	require.NoError(t, g.SeedAdmin(adminEmail, adminPassword, "Vendedor"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Login(ctx, dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, navigation.Anonymous, g.State())
}

func TestLogout_LimpiaMemoriaYSlot(t *testing.T) {
	store := memory.NewSessionStore()
	g := newGate(t, memory.NewUserRepository(), store)
	out := login(t, g, "")
	sess, err := g.Authenticate(out.Token)
	require.NoError(t, err)

	require.NoError(t, g.Logout(context.Background(), sess.ID))
	assert.Nil(t, g.Session())
	raw, err := store.Load(context.Background(), auth.SessionKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = g.Authenticate(out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, g.Logout(context.Background(), sess.ID), domain.ErrUnauthorized)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	_, err := g.Authenticate("no-es-un-jwt")
	var authErr domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AuthInvalidToken, authErr.Reason)
}

// ── Persistencia ────────────────────────────────────────────────────────────

func TestRestore_RecuperaLaSesionTrasReinicio(t *testing.T) {
	users := memory.NewUserRepository()
	store := memory.NewSessionStore()
	g := newGate(t, users, store)
	out := login(t, g, "")

	restarted := auth.NewGate(users, store, jwtCfg(), 0, logger.Nop(), ports.NopRecorder{})
	require.NoError(t, restarted.Restore(context.Background()))
	assert.True(t, restarted.IsAdmin())

	_, err := restarted.Authenticate(out.Token)
	assert.NoError(t, err, "el token emitido antes del reinicio sigue siendo válido")
}

func TestRestore_SesionVencidaSeDescarta(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	require.NoError(t, store.Save(ctx, auth.SessionKey,
		[]byte(`{"session_id":"s1","email":"admin@newtop.com","role":"vendedor","expires_at":"2020-01-01T00:00:00Z"}`)))

	g := newGate(t, memory.NewUserRepository(), store)
	require.NoError(t, g.Restore(ctx))
	assert.Equal(t, navigation.Anonymous, g.State())
	raw, _ := store.Load(ctx, auth.SessionKey)
	assert.Nil(t, raw)
}

func TestRestore_SlotVacioOIlegible(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	g := newGate(t, memory.NewUserRepository(), store)
	require.NoError(t, g.Restore(ctx))
	assert.Nil(t, g.Session())

	require.NoError(t, store.Save(ctx, auth.SessionKey, []byte("{basura")))
	require.NoError(t, g.Restore(ctx))
	assert.Nil(t, g.Session())
}

// ── Registro ────────────────────────────────────────────────────────────────

func TestRegister_ClienteNoEsAdmin(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	u, err := g.Register(dto.RegisterRequest{Email: "cliente@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "cliente", u.Role)
	assert.Equal(t, "cliente@example.com", u.Name)

	out, err := g.Login(context.Background(), dto.LoginRequest{Email: "cliente@example.com", Password: "secreto123", From: "/cotizaciones"})
	require.NoError(t, err)
	assert.Equal(t, "/", out.RedirectTo, "un cliente no puede volver a una ruta de administración")
	assert.False(t, g.IsAdmin())
	assert.Equal(t, navigation.AuthenticatedClient, g.State())
}

func TestRegister_Validaciones(t *testing.T) {
	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	_, err := g.Register(dto.RegisterRequest{Email: "malo", Password: "corta"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, domain.FieldErrors(err), 2)

	_, err = g.Register(dto.RegisterRequest{Email: "ADMIN@newtop.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "anonymous", auth.Describe(nil).State)

	g := newGate(t, memory.NewUserRepository(), memory.NewSessionStore())
	login(t, g, "")
	d := auth.Describe(g.Session())
	assert.Equal(t, "authenticated-admin", d.State)
	assert.True(t, d.IsAdmin)
	require.NotNil(t, d.User)
	assert.Equal(t, adminEmail, d.User.Email)
}
