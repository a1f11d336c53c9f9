// Package sshtest runs an in-process SSH server that executes exec requests with sh -c.
package sshtest

import (
	"errors"
	"net"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	gossh "golang.org/x/crypto/ssh"
)

// Server is a running test SSH server
type Server struct {
	Host string
	Port int

	conns    atomic.Int32
	execs    atomic.Int32
	mu       sync.Mutex
	keys     []gossh.PublicKey
	password string
	srv      *ssh.Server
	user     string
}

// Option configures the server before it starts
type Option func(*Server)

// WithPassword accepts password auth for user
func WithPassword(user, password string) Option {
	return func(s *Server) {
		s.user = user
		s.password = password
	}
}

// WithAuthorizedKey accepts public key auth for key
func WithAuthorizedKey(key gossh.PublicKey) Option {
	return func(s *Server) { s.keys = append(s.keys, key) }
}

// Start listens on a random loopback port and stops the server when the test ends
func Start(t *testing.T, opts ...Option) *Server {
	t.Helper()
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}

	srv, err := wish.NewServer(
		wish.WithHostKeyPath(filepath.Join(t.TempDir(), "host_ed25519")),
		wish.WithPasswordAuth(func(ctx ssh.Context, password string) bool {
			return s.password != "" && ctx.User() == s.user && password == s.password
		}),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, k := range s.keys {
				if ssh.KeysEqual(k, key) {
					return true
				}
			}
			return false
		}),
		wish.WithMiddleware(s.execMiddleware),
		func(srv *ssh.Server) error {
			srv.ConnCallback = func(ctx ssh.Context, conn net.Conn) net.Conn {
				s.conns.Add(1)
				return conn
			}
			return nil
		},
	)
	if err != nil {
		t.Fatalf("failed to create ssh server: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	s.Host = host
	s.Port, _ = strconv.Atoi(port)
	s.srv = srv

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			t.Logf("ssh server stopped: %v", err)
		}
	}()
	t.Cleanup(func() { _ = srv.Close() })
	return s
}

// Connections returns how many TCP connections the server accepted
func (s *Server) Connections() int {
	return int(s.conns.Load())
}

// Execs returns how many exec requests the server ran
func (s *Server) Execs() int {
	return int(s.execs.Load())
}

// Close stops the server and drops every connection
func (s *Server) Close() error {
	return s.srv.Close()
}

func (s *Server) execMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.execs.Add(1)
		cmd := exec.CommandContext(sess.Context(), "sh", "-c", sess.RawCommand())
		cmd.Stdout = sess
		cmd.Stderr = sess.Stderr()

		code := 0
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else {
				code = 127
			}
		}
		_ = sess.Exit(code)
	}
}
