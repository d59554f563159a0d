package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"github.com/garrettladley/earth/internal/xhttp"
	"github.com/garrettladley/earth/internal/xslog"
)

const (
	callbackPath = "/callback"
	shutdownTime = 5 * time.Second
)

// Flow runs an interactive sign-in and returns the provider's token.
type Flow interface {
	Run(ctx context.Context) (*oauth2.Token, error)
}

type tokenResult struct {
	token *oauth2.Token
	err   error
}

// BrowserFlow opens the provider's consent page in the user's browser and
// receives the authorization code on a loopback listener.
type BrowserFlow struct {
	config *oauth2.Config
	open   func(url string) error
	logger *slog.Logger
}

var _ Flow = (*BrowserFlow)(nil)

type FlowOption func(*BrowserFlow)

// WithOpener replaces the browser launcher.
func WithOpener(open func(url string) error) FlowOption {
	return func(f *BrowserFlow) { f.open = open }
}

func WithFlowLogger(logger *slog.Logger) FlowOption {
	return func(f *BrowserFlow) { f.logger = logger }
}

func NewBrowserFlow(config *oauth2.Config, opts ...FlowOption) *BrowserFlow {
	f := &BrowserFlow{
		config: config,
		open:   openBrowser,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *BrowserFlow) Run(ctx context.Context) (*oauth2.Token, error) {
	state, err := GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to start listener: %w", err)
	}

	// copy so concurrent runs never share a redirect URL
	cfg := *f.config
	cfg.RedirectURL = "http://" + listener.Addr().String() + callbackPath

	resultCh := make(chan tokenResult, 1)
	server := &http.Server{
		Handler:           newCallbackRouter(&cfg, state, verifier, resultCh),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			deliver(resultCh, tokenResult{err: fmt.Errorf("server error: %w", err)})
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTime)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			f.logger.WarnContext(ctx, "failed to shutdown callback server", xslog.Error(err))
		}
	}()

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	if err := f.open(url); err != nil {
		f.logger.WarnContext(ctx, "failed to open browser", xslog.Error(err))
	}

	select {
	case result := <-resultCh:
		return result.token, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newCallbackRouter(cfg *oauth2.Config, state, verifier string, resultCh chan<- tokenResult) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(callbackPath, func(w http.ResponseWriter, req *http.Request) {
		token, err := handleCallback(w, req, cfg, state, verifier)
		if err != nil {
			deliver(resultCh, tokenResult{err: err})
			return
		}
		writeSuccessHTML(w)
		deliver(resultCh, tokenResult{token: token})
	}).Methods(http.MethodGet)
	return r
}

func handleCallback(w http.ResponseWriter, r *http.Request, cfg *oauth2.Config, state, verifier string) (*oauth2.Token, error) {
	query := r.URL.Query()

	if !ValidateState(state, query.Get(ParamState)) {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return nil, ErrInvalidState
	}

	if errParam := query.Get(ParamError); errParam != "" {
		errDesc := query.Get(ParamErrorDescription)
		http.Error(w, fmt.Sprintf("Sign-in error: %s", errDesc), http.StatusBadRequest)
		return nil, fmt.Errorf("oauth error: %s - %s", errParam, errDesc)
	}

	code := query.Get(ParamCode)
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return nil, ErrMissingCode
	}

	token, err := cfg.Exchange(r.Context(), code, oauth2.VerifierOption(verifier))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code", http.StatusInternalServerError)
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	return token, nil
}

// deliver never blocks: only the first result is consumed.
func deliver(ch chan<- tokenResult, r tokenResult) {
	select {
	case ch <- r:
	default:
	}
}

func writeSuccessHTML(w http.ResponseWriter) {
	xhttp.SetHeaderContentTypeTextHTML(w)
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Signed In</title></head>
<body>
<h1>Signed in to EARTH</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
