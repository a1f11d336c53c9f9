// Package ssh pools authenticated SSH sessions per server and runs commands over them.
package ssh

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
	"golang.org/x/sync/singleflight"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// IdleTimeout is how long an unused session stays reusable
const IdleTimeout = 300 * time.Second

type session struct {
	client   *gossh.Client
	dead     atomic.Bool
	lastUsed time.Time
}

// Pool owns at most one live session per server id.
// mu guards sessions and states; it is never held across network I/O.
type Pool struct {
	group           singleflight.Group
	hostKeyCallback gossh.HostKeyCallback
	mu              sync.Mutex
	now             func() time.Time
	secrets         ports.SecretStore
	sessions        map[string]*session
	states          map[string]domain.ConnectionStatus
}

var (
	_ ports.SessionPool   = (*Pool)(nil)
	_ ports.RunnerFactory = (*Pool)(nil)
)

// Option configures a Pool
type Option func(*Pool)

// WithHostKeyCallback sets how server host keys are verified
func WithHostKeyCallback(cb gossh.HostKeyCallback) Option {
	return func(p *Pool) { p.hostKeyCallback = cb }
}

// WithClock replaces the time source used for idle accounting
func WithClock(now func() time.Time) Option {
	return func(p *Pool) { p.now = now }
}

// KnownHostsCallback verifies host keys against an OpenSSH known_hosts file
func KnownHostsCallback(path string) (gossh.HostKeyCallback, error) {
	cb, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts %s: %w", path, err)
	}
	return cb, nil
}

// NewPool creates an empty pool. Host keys are not verified unless WithHostKeyCallback is given.
func NewPool(secrets ports.SecretStore, opts ...Option) *Pool {
	p := &Pool{
		hostKeyCallback: gossh.InsecureIgnoreHostKey(),
		now:             time.Now,
		secrets:         secrets,
		sessions:        make(map[string]*session),
		states:          make(map[string]domain.ConnectionStatus),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire returns a live client for the server, reusing a pooled session
// when it is neither idle past IdleTimeout nor dead.
func (p *Pool) Acquire(ctx context.Context, server domain.ServerProfile) (*gossh.Client, error) {
	p.mu.Lock()
	s := p.sessions[server.ID]
	fresh := s != nil && p.now().Sub(s.lastUsed) < IdleTimeout
	p.mu.Unlock()

	if s != nil {
		if fresh && p.alive(s, server.ConnectTimeout()) {
			p.mu.Lock()
			if p.sessions[server.ID] == s {
				s.lastUsed = p.now()
			}
			p.mu.Unlock()
			return s.client, nil
		}
		logging.Logger.Info("Discarding pooled SSH session", "server", server.ID, "idle", !fresh)
		p.evict(server.ID, s)
	}

	v, err, _ := p.group.Do(server.ID, func() (any, error) {
		p.mu.Lock()
		if cur := p.sessions[server.ID]; cur != nil && !cur.dead.Load() && p.now().Sub(cur.lastUsed) < IdleTimeout {
			p.mu.Unlock()
			return cur, nil
		}
		p.mu.Unlock()

		created, err := p.connect(ctx, server)
		if err != nil {
			return nil, err
		}
		p.store(server.ID, created)
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*session).client, nil
}

// TestConnection opens a fresh session, replacing any pooled one, and reports the outcome
func (p *Pool) TestConnection(ctx context.Context, server domain.ServerProfile) domain.ConnectionStatus {
	p.Disconnect(server.ID)

	_, err, _ := p.group.Do(server.ID, func() (any, error) {
		created, err := p.connect(ctx, server)
		if err != nil {
			return nil, err
		}
		p.store(server.ID, created)
		return created, nil
	})
	if err != nil {
		return domain.ConnectionStatus{State: domain.StateError, Message: err.Error()}
	}
	return domain.ConnectionStatus{State: domain.StateConnected}
}

// Disconnect drops the server's session, if any
func (p *Pool) Disconnect(id string) {
	p.mu.Lock()
	s := p.sessions[id]
	delete(p.sessions, id)
	delete(p.states, id)
	p.mu.Unlock()

	if s != nil {
		s.client.Close()
		logging.Logger.Info("SSH session disconnected", "server", id)
	}
}

// Status reports the pool's view of a server without network I/O
func (p *Pool) Status(id string) domain.ConnectionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sessions[id]; ok && !s.dead.Load() {
		// Acquire would not reuse a session idle this long
		if p.now().Sub(s.lastUsed) >= IdleTimeout {
			return domain.ConnectionStatus{State: domain.StateDisconnected}
		}
		return domain.ConnectionStatus{State: domain.StateConnected}
	}
	if st, ok := p.states[id]; ok {
		return st
	}
	return domain.ConnectionStatus{State: domain.StateDisconnected}
}

// CleanupIdle closes every session idle for longer than IdleTimeout and returns how many
func (p *Pool) CleanupIdle() int {
	now := p.now()
	var stale []*session

	p.mu.Lock()
	for id, s := range p.sessions {
		if now.Sub(s.lastUsed) > IdleTimeout || s.dead.Load() {
			stale = append(stale, s)
			delete(p.sessions, id)
		}
	}
	p.mu.Unlock()

	for _, s := range stale {
		s.client.Close()
	}
	if len(stale) > 0 {
		logging.Logger.Info("Closed idle SSH sessions", "count", len(stale))
	}
	return len(stale)
}

// Close drops every session
func (p *Pool) Close() {
	p.mu.Lock()
	sessions := p.sessions
	p.sessions = make(map[string]*session)
	p.states = make(map[string]domain.ConnectionStatus)
	p.mu.Unlock()

	for _, s := range sessions {
		s.client.Close()
	}
}

// RunnerFor returns a command runner bound to server
func (p *Pool) RunnerFor(server domain.ServerProfile) ports.CommandRunner {
	return &Runner{pool: p, server: server}
}

func (p *Pool) store(id string, s *session) {
	p.mu.Lock()
	old := p.sessions[id]
	p.sessions[id] = s
	delete(p.states, id)
	p.mu.Unlock()

	if old != nil && old != s {
		old.client.Close()
	}
}

// evict removes s if it is still the pooled session for id
func (p *Pool) evict(id string, s *session) {
	p.mu.Lock()
	if p.sessions[id] == s {
		delete(p.sessions, id)
	}
	p.mu.Unlock()
	s.client.Close()
}

// invalidate marks the session behind client dead so the next Acquire reconnects
func (p *Pool) invalidate(id string, client *gossh.Client) {
	p.mu.Lock()
	s := p.sessions[id]
	p.mu.Unlock()
	if s != nil && s.client == client {
		p.evict(id, s)
	}
}

// alive probes the session with a keepalive request bounded by timeout
func (p *Pool) alive(s *session, timeout time.Duration) bool {
	if s.dead.Load() {
		return false
	}
	done := make(chan error, 1)
	go func() {
		_, _, err := s.client.SendRequest("keepalive@openssh.com", true, nil)
		done <- err
	}()
	select {
	case err := <-done:
		return err == nil
	case <-time.After(timeout):
		return false
	}
}

func (p *Pool) setState(id string, st domain.ConnectionStatus) {
	p.mu.Lock()
	p.states[id] = st
	p.mu.Unlock()
}

// connect dials, handshakes and authenticates a new session
func (p *Pool) connect(ctx context.Context, server domain.ServerProfile) (*session, error) {
	p.setState(server.ID, domain.ConnectionStatus{State: domain.StateConnecting})
	s, err := p.dial(ctx, server)
	if err != nil {
		p.setState(server.ID, domain.ConnectionStatus{State: domain.StateError, Message: err.Error()})
		logging.Logger.Warn("SSH connection failed", "server", server.ID, "host", server.Host, "error", err)
		return nil, err
	}
	logging.Logger.Info("SSH session established", "server", server.ID, "host", server.Host, "auth", server.Auth.Type)
	return s, nil
}

func (p *Pool) dial(ctx context.Context, server domain.ServerProfile) (*session, error) {
	timeout := server.ConnectTimeout()
	if timeout <= 0 {
		timeout = domain.DefaultConnectTimeoutSecs * time.Second
	}

	methods, closer, err := p.authMethods(server)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	addr := server.Address()
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &domain.ConnectionError{Server: server.ID, Op: "dial", Err: err}
	}

	config := &gossh.ClientConfig{
		User:            server.Username,
		Auth:            methods,
		HostKeyCallback: p.hostKeyCallback,
		Timeout:         timeout,
	}

	_ = conn.SetDeadline(time.Now().Add(timeout))
	c, chans, reqs, err := gossh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			reason := "rejected by server"
			if server.Auth.Type == domain.AuthAgent {
				reason = "no matching key"
			}
			return nil, &domain.AuthError{Method: server.Auth.Type, Reason: reason, Err: err}
		}
		return nil, &domain.ConnectionError{Server: server.ID, Op: "handshake", Err: err}
	}
	_ = conn.SetDeadline(time.Time{})

	s := &session{client: gossh.NewClient(c, chans, reqs), lastUsed: p.now()}
	go func() {
		_ = s.client.Wait()
		s.dead.Store(true)
	}()
	return s, nil
}
