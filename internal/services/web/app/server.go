package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/arenahq/arena/internal/platform/timeouts"
	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/arenahq/arena/internal/services/web/modules"
	"github.com/arenahq/arena/internal/services/web/platform/confirm"
	"github.com/arenahq/arena/internal/services/web/platform/flash"
	"github.com/arenahq/arena/internal/services/web/platform/httpx"
	"github.com/arenahq/arena/internal/services/web/platform/modulehandler"
	"github.com/arenahq/arena/internal/services/web/platform/requestmeta"
	"github.com/arenahq/arena/internal/services/web/platform/sessioncookie"
	"github.com/arenahq/arena/internal/services/web/session"
	"github.com/arenahq/arena/internal/services/web/static"
	"github.com/arenahq/arena/internal/services/web/storage"
	"github.com/arenahq/arena/internal/services/web/storage/redis"
	"github.com/arenahq/arena/internal/services/web/storage/sqlite"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	staticPrefix     = "/static/"
	compressionLevel = 5
)

// HandlerDeps carries the collaborators of the root handler.
type HandlerDeps struct {
	Store   storage.Store
	Backend *backend.Client
	Config  Config
}

// BuildRootHandler composes every module behind the shared middleware chain.
func BuildRootHandler(deps HandlerDeps) (http.Handler, error) {
	if deps.Store == nil {
		return nil, errors.New("session store is required")
	}
	cfg := deps.Config
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	sessions := session.NewManager(deps.Store, sessioncookie.Cookies{Policy: policy}, cfg.SessionTTL)
	moduleDeps := modules.Dependencies{
		Backend:             deps.Backend,
		Sessions:            sessions,
		Base:                modulehandler.NewBase(session.ResolveViewer, nil, flash.Writer{Policy: policy}),
		Confirm:             confirm.NewRunner(),
		Shop:                cfg.Shop,
		PlaceholderStats:    cfg.PlaceholderStats,
		RequestSchemePolicy: policy,
	}
	public := modules.DefaultPublicModules(moduleDeps)
	protected := modules.DefaultProtectedModules(moduleDeps)
	if degraded := modules.Unhealthy(public, protected); len(degraded) > 0 {
		log.Printf("web modules degraded modules=%s", strings.Join(degraded, ","))
	}
	composed, err := Compose(ComposeInput{
		RequireAuth:      session.RequireSignedIn,
		PublicModules:    public,
		ProtectedModules: protected,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("web routes composed count=%d patterns=%s", len(composed.Routes), strings.Join(composed.Patterns(), ","))

	root := http.NewServeMux()
	root.Handle(staticPrefix, http.StripPrefix(staticPrefix, http.FileServerFS(static.FS)))
	root.Handle("/", composed.Handler)

	handler := httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLog(),
		middleware.Compress(compressionLevel),
		httpx.RequireSameOrigin(policy),
		sessions.Middleware(),
	)
	return otelhttp.NewHandler(handler, "web"), nil
}

// Server hosts the browser-facing HTTP surface.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
	janitor    session.Janitor
}

// NewServer opens the session store, builds the backend client and composes
// the root handler.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	client, err := backend.New(backend.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})
	if err != nil {
		return nil, err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	handler, err := BuildRootHandler(HandlerDeps{Store: store, Backend: client, Config: cfg})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:   store,
		janitor: session.Janitor{Store: store, Interval: timeouts.SessionSweep},
	}, nil
}

func openStore(ctx context.Context, cfg Config) (storage.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.SessionStore)) {
	case "", StoreSQLite:
		path := strings.TrimSpace(cfg.SessionDBPath)
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create session store dir: %w", err)
			}
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, nil
	case StoreRedis:
		store, err := redis.Open(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

// ListenAndServe serves HTTP and sweeps expired sessions until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go s.janitor.Run(janitorCtx)

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close session store: %v", err)
	}
}
