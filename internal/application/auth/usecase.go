// Package auth sesión única del back-office: login con credenciales bcrypt, token JWT por sesión,
// reflejo persistente de la sesión viva y registro de clientes.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/newtop/marmoleria-api/internal/application/dto"
	"github.com/newtop/marmoleria-api/internal/application/ports"
	"github.com/newtop/marmoleria-api/internal/domain"
	"github.com/newtop/marmoleria-api/internal/domain/entity"
	"github.com/newtop/marmoleria-api/internal/domain/navigation"
	"github.com/newtop/marmoleria-api/internal/domain/repository"
	"github.com/newtop/marmoleria-api/pkg/jwt"
	"github.com/newtop/marmoleria-api/pkg/latency"
	"github.com/newtop/marmoleria-api/pkg/logger"
)

// SessionKey clave fija del slot persistente.
const SessionKey = "user"

// MinPasswordLength longitud mínima en el registro.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Gate contexto de sesión inyectable. Hay como máximo una sesión viva; un login nuevo
// reemplaza la anterior y sus tokens dejan de ser válidos.
type Gate struct {
	users      repository.UserRepository
	store      repository.SessionStore
	jwtCfg     JWTConfig
	loginDelay time.Duration
	log        *logger.Logger
	metrics    ports.Recorder
	now        func() time.Time

	mu      sync.RWMutex
	current *entity.Session
}

// NewGate construye el gate sin sesión; Restore recupera la del slot persistente.
func NewGate(
	users repository.UserRepository,
	store repository.SessionStore,
	jwtCfg JWTConfig,
	loginDelay time.Duration,
	log *logger.Logger,
	metrics ports.Recorder,
) *Gate {
	return &Gate{
		users:      users,
		store:      store,
		jwtCfg:     jwtCfg,
		loginDelay: loginDelay,
		log:        log,
		metrics:    metrics,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// sessionRecord forma JSON de la sesión en el slot.
type sessionRecord struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Restore carga la sesión reflejada. Una sesión vencida, ilegible o de un usuario que ya no
// existe se descarta y se limpia el slot.
func (g *Gate) Restore(ctx context.Context) error {
	raw, err := g.store.Load(ctx, SessionKey)
	if err != nil {
		return fmt.Errorf("leer sesión: %w", err)
	}
	if raw == nil {
		return nil
	}
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		g.log.Warn().Err(err).Msg("sesión persistida ilegible; se descarta")
		return g.store.Delete(ctx, SessionKey)
	}
	if !g.now().Before(rec.ExpiresAt) {
		g.log.Info().Str("session_id", rec.SessionID).Msg("sesión persistida vencida; se descarta")
		return g.store.Delete(ctx, SessionKey)
	}
	user, err := g.users.FindByEmail(rec.Email)
	if err != nil {
		return fmt.Errorf("buscar usuario de la sesión: %w", err)
	}
	if user == nil || user.Status != entity.UserStatusActive {
		g.log.Warn().Str("email", rec.Email).Msg("usuario de la sesión persistida no disponible; se descarta")
		return g.store.Delete(ctx, SessionKey)
	}

	g.mu.Lock()
	g.current = &entity.Session{ID: rec.SessionID, User: *user, IssuedAt: rec.IssuedAt, ExpiresAt: rec.ExpiresAt}
	g.mu.Unlock()
	g.log.Info().Str("session_id", rec.SessionID).Str("email", user.Email).Msg("sesión restaurada")
	return nil
}

// Login espera la latencia simulada, verifica credenciales y reemplaza la sesión viva.
// Cualquier fallo deja la sesión anterior intacta.
func (g *Gate) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := latency.Wait(ctx, g.loginDelay); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	user, err := g.verify(in.Email, in.Password)
	if err != nil {
		g.metrics.LoginAttempt(false)
		var authErr domain.AuthError
		if errors.As(err, &authErr) {
			g.log.Warn().Str("email", in.Email).Str("reason", authErr.Reason).Msg("login rechazado")
		}
		return nil, err
	}

	now := g.now()
	sess := entity.Session{
		ID:        uuid.NewString(),
		User:      *user,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(g.jwtCfg.ExpMinutes) * time.Minute),
	}
	token, err := jwt.Generate(g.jwtCfg.Secret, g.jwtCfg.Issuer,
		jwt.Subject{UserID: user.ID, SessionID: sess.ID, Role: user.Role}, sess.IssuedAt, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	raw, err := json.Marshal(sessionRecord{
		SessionID: sess.ID, UserID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role,
		IssuedAt: sess.IssuedAt, ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("codificar sesión: %w", err)
	}

	g.mu.Lock()
	if err := g.store.Save(ctx, SessionKey, raw); err != nil {
		g.mu.Unlock()
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	previous := g.current
	g.current = &sess
	g.mu.Unlock()

	g.metrics.LoginAttempt(true)
	ev := g.log.Info().Str("session_id", sess.ID).Str("email", user.Email).Str("role", user.Role)
	if previous != nil {
		ev = ev.Str("replaced_session", previous.ID)
	}
	ev.Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token:      token,
		ExpiresAt:  sess.ExpiresAt,
		User:       ToUserResponse(*user),
		RedirectTo: navigation.AfterLogin(stateOf(user), in.From),
	}, nil
}

func (g *Gate) verify(email, password string) (*entity.User, error) {
	user, err := g.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.AuthError{Reason: domain.AuthUnknownUser}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.AuthError{Reason: domain.AuthBadPassword}
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.AuthError{Reason: domain.AuthInactiveUser}
	}
	return user, nil
}

// Logout cierra la sesión sessionID si sigue siendo la viva; limpia memoria y slot.
func (g *Gate) Logout(ctx context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil || g.current.ID != sessionID {
		return domain.AuthError{Reason: domain.AuthSessionReplaced}
	}
	if err := g.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	g.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	g.current = nil
	return nil
}

// Authenticate valida el token y que pertenezca a la sesión viva.
func (g *Gate) Authenticate(token string) (*entity.Session, error) {
	claims, err := jwt.Parse(g.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.AuthError{Reason: domain.AuthInvalidToken}
	}
	g.mu.RLock()
	cur := g.current
	g.mu.RUnlock()
	if cur == nil || cur.ID != claims.SessionID() {
		return nil, domain.AuthError{Reason: domain.AuthSessionReplaced}
	}
	if cur.Expired(g.now()) {
		return nil, fmt.Errorf("sesión %s: %w", cur.ID, domain.ErrSessionExpired)
	}
	s := *cur
	return &s, nil
}

// Session copia de la sesión viva; nil si no hay o venció.
func (g *Gate) Session() *entity.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil || g.current.Expired(g.now()) {
		return nil
	}
	s := *g.current
	return &s
}

// CurrentUser usuario de la sesión viva.
func (g *Gate) CurrentUser() (*entity.User, bool) {
	s := g.Session()
	if s == nil {
		return nil, false
	}
	return &s.User, true
}

// IsAdmin indica si la sesión viva es de un vendedor.
func (g *Gate) IsAdmin() bool {
	u, ok := g.CurrentUser()
	return ok && u.IsAdmin()
}

// State estado de la sesión viva para la guardia de rutas.
func (g *Gate) State() navigation.SessionState {
	u, _ := g.CurrentUser()
	return stateOf(u)
}

// StateOf estado que corresponde a una sesión concreta (nil es anónima).
func StateOf(s *entity.Session) navigation.SessionState {
	if s == nil {
		return navigation.Anonymous
	}
	return stateOf(&s.User)
}

func stateOf(u *entity.User) navigation.SessionState {
	switch {
	case u == nil:
		return navigation.Anonymous
	case u.IsAdmin():
		return navigation.AuthenticatedAdmin
	default:
		return navigation.AuthenticatedClient
	}
}

// Describe respuesta de /api/auth/me para la sesión s.
func Describe(s *entity.Session) dto.SessionResponse {
	out := dto.SessionResponse{State: string(StateOf(s))}
	if s == nil {
		return out
	}
	u := ToUserResponse(s.User)
	exp := s.ExpiresAt
	out.User, out.ExpiresAt, out.IsAdmin = &u, &exp, s.User.IsAdmin()
	return out
}

// Register crea una cuenta de cliente. Email único sin distinguir mayúsculas.
func (g *Gate) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	var errs domain.ValidationErrors
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "formato inválido")
	}
	if len(in.Password) < MinPasswordLength {
		errs.Add("password", fmt.Sprintf("mínimo %d caracteres", MinPasswordLength))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user, err := g.createUser(email, in.Password, name, entity.RoleCliente)
	if err != nil {
		return nil, err
	}
	g.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("cliente registrado")
	out := ToUserResponse(*user)
	return &out, nil
}

// SeedAdmin crea la cuenta de vendedor de configuración si no existe.
func (g *Gate) SeedAdmin(email, password, name string) error {
	existing, err := g.users.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("buscar administrador: %w", err)
	}
	if existing != nil {
		return nil
	}
	if _, err := g.createUser(email, password, name, entity.RoleVendedor); err != nil {
		return fmt.Errorf("crear administrador: %w", err)
	}
	g.log.Info().Str("email", email).Msg("cuenta de administrador creada")
	return nil
}

func (g *Gate) createUser(email, password, name, role string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	now := g.now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := g.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToUserResponse mapea la entidad sin el hash.
func ToUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
