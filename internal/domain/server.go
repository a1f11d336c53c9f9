package domain

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied to server profiles loaded without explicit values
const (
	DefaultSSHPort            = 22
	DefaultRemoteConfigDir    = "~/.claude-skill-manager"
	DefaultRemoteSkillsDir    = "~/.claude/skills"
	DefaultConnectTimeoutSecs = 10
	DefaultCommandTimeoutSecs = 30
)

// AuthMethod is how a server session authenticates.
// PrivateKeyPath is only meaningful for AuthKey.
type AuthMethod struct {
	Type           AuthMethodKind `json:"type"`
	PrivateKeyPath string         `json:"private_key_path,omitempty"`
}

// ServerProfile describes one remote machine reachable over SSH
type ServerProfile struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Host               string     `json:"host"`
	Port               int        `json:"port"`
	Username           string     `json:"username"`
	Auth               AuthMethod `json:"auth"`
	RemoteRepoPath     string     `json:"remote_repo_path"`
	RemoteConfigDir    string     `json:"remote_config_dir"`
	RemoteSkillsDir    string     `json:"remote_skills_dir"`
	ConnectTimeoutSecs int        `json:"connect_timeout_secs"`
	CommandTimeoutSecs int        `json:"command_timeout_secs"`
}

// ApplyDefaults fills zero-valued fields with their defaults
func (s *ServerProfile) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = DefaultSSHPort
	}
	if s.RemoteConfigDir == "" {
		s.RemoteConfigDir = DefaultRemoteConfigDir
	}
	if s.RemoteSkillsDir == "" {
		s.RemoteSkillsDir = DefaultRemoteSkillsDir
	}
	if s.ConnectTimeoutSecs <= 0 {
		s.ConnectTimeoutSecs = DefaultConnectTimeoutSecs
	}
	if s.CommandTimeoutSecs <= 0 {
		s.CommandTimeoutSecs = DefaultCommandTimeoutSecs
	}
	if s.Auth.Type == "" {
		s.Auth.Type = AuthAgent
	}
}

// Validate checks the fields needed to open a session
func (s *ServerProfile) Validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return fmt.Errorf("server %q: host is required", s.ID)
	}
	if strings.TrimSpace(s.Username) == "" {
		return fmt.Errorf("server %q: username is required", s.ID)
	}
	switch s.Auth.Type {
	case AuthAgent, AuthPassword:
	case AuthKey:
		if s.Auth.PrivateKeyPath == "" {
			return fmt.Errorf("server %q: private key path is required for key auth", s.ID)
		}
	default:
		return fmt.Errorf("server %q: unknown auth method %q", s.ID, s.Auth.Type)
	}
	return nil
}

// Address returns host:port for dialing
func (s *ServerProfile) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerProfile) ConnectTimeout() time.Duration {
	return time.Duration(s.ConnectTimeoutSecs) * time.Second
}

func (s *ServerProfile) CommandTimeout() time.Duration {
	return time.Duration(s.CommandTimeoutSecs) * time.Second
}

// ConnectionState is the pool's view of one server
type ConnectionState string

const (
	StateConnected    ConnectionState = "Connected"
	StateConnecting   ConnectionState = "Connecting"
	StateDisconnected ConnectionState = "Disconnected"
	StateError        ConnectionState = "Error"
)

// ConnectionStatus carries the state plus the error message for StateError
type ConnectionStatus struct {
	State   ConnectionState `json:"status"`
	Message string          `json:"message,omitempty"`
}

func (c ConnectionStatus) String() string {
	if c.State == StateError && c.Message != "" {
		return fmt.Sprintf("%s: %s", c.State, c.Message)
	}
	return string(c.State)
}

// CommandResult is the raw outcome of one remote command.
// ExitCode is -1 when the remote side did not report one.
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// Checked returns stdout unless the command exited non-zero with diagnostic text.
//
// A non-zero exit with empty stderr counts as success. Silent remote tools that
// fail are therefore not detected here; callers that need strict checking must
// inspect ExitCode themselves.
func (r CommandResult) Checked() (string, error) {
	stderr := strings.TrimSpace(r.Stderr)
	if r.ExitCode != 0 && stderr != "" {
		return "", &CommandError{ExitCode: r.ExitCode, Stderr: stderr}
	}
	return r.Stdout, nil
}
