package ssh

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/paths"
)

// authMethods builds the client auth for the server's configured method.
// The returned closer releases the agent connection and must be called after the handshake.
func (p *Pool) authMethods(server domain.ServerProfile) ([]gossh.AuthMethod, io.Closer, error) {
	switch server.Auth.Type {
	case domain.AuthAgent:
		return agentAuth()
	case domain.AuthKey:
		m, err := p.keyAuth(server)
		return m, nopCloser{}, err
	case domain.AuthPassword:
		m, err := p.passwordAuth(server)
		return m, nopCloser{}, err
	default:
		return nil, nil, &domain.AuthError{Method: server.Auth.Type, Reason: "unsupported auth method"}
	}
}

// agentAuth offers every agent identity; the handshake tries them in order
func agentAuth() ([]gossh.AuthMethod, io.Closer, error) {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil, nil, &domain.AuthError{Method: domain.AuthAgent, Reason: "SSH_AUTH_SOCK is not set"}
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil, nil, &domain.AuthError{Method: domain.AuthAgent, Reason: "cannot reach agent", Err: err}
	}

	signers, err := agent.NewClient(conn).Signers()
	if err != nil {
		conn.Close()
		return nil, nil, &domain.AuthError{Method: domain.AuthAgent, Reason: "cannot list identities", Err: err}
	}
	if len(signers) == 0 {
		conn.Close()
		return nil, nil, &domain.AuthError{Method: domain.AuthAgent, Reason: "no identities in agent"}
	}
	return []gossh.AuthMethod{gossh.PublicKeys(signers...)}, conn, nil
}

// keyAuth parses the key file, fetching the passphrase only when the key is encrypted
func (p *Pool) keyAuth(server domain.ServerProfile) ([]gossh.AuthMethod, error) {
	keyPath := paths.ExpandPath(server.Auth.PrivateKeyPath)
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, &domain.AuthError{Method: domain.AuthKey, Reason: fmt.Sprintf("cannot read key file %s", keyPath), Err: err}
	}

	signer, err := gossh.ParsePrivateKey(data)
	var missing *gossh.PassphraseMissingError
	if errors.As(err, &missing) {
		passphrase, serr := p.secrets.Get(server.ID)
		if serr != nil {
			return nil, &domain.AuthError{Method: domain.AuthKey, Reason: "key is encrypted and no passphrase is stored", Err: serr}
		}
		signer, err = gossh.ParsePrivateKeyWithPassphrase(data, []byte(passphrase))
		if err != nil {
			return nil, &domain.AuthError{Method: domain.AuthKey, Reason: "cannot decrypt key with stored passphrase", Err: err}
		}
	} else if err != nil {
		return nil, &domain.AuthError{Method: domain.AuthKey, Reason: "invalid private key", Err: err}
	}

	return []gossh.AuthMethod{gossh.PublicKeys(signer)}, nil
}

func (p *Pool) passwordAuth(server domain.ServerProfile) ([]gossh.AuthMethod, error) {
	password, err := p.secrets.Get(server.ID)
	if err != nil {
		return nil, &domain.AuthError{Method: domain.AuthPassword, Reason: "no password stored", Err: err}
	}
	return []gossh.AuthMethod{gossh.Password(password)}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
