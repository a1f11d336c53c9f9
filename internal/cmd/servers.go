package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/config"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/theme"
)

// ServersCmd manages remote servers
type ServersCmd struct {
	Add    ServersAddCmd    `cmd:"add" help:"Add or update a server"`
	Del    ServersDelCmd    `cmd:"del" help:"Delete a server and its stored secret"`
	Init   ServersInitCmd   `cmd:"init" help:"Create the skillpilot layout on a server"`
	List   ServersListCmd   `cmd:"list" help:"List servers" default:"1"`
	Secret ServersSecretCmd `cmd:"secret" help:"Store the password or key passphrase of a server"`
	Status ServersStatusCmd `cmd:"status" help:"Connect to servers and report their link directories"`
	Test   ServersTestCmd   `cmd:"test" help:"Test connections"`
}

// ServersListCmd lists servers
type ServersListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *ServersListCmd) Run(container *Container) error {
	servers, err := container.RemoteService.ListServers(context.Background())
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(servers)
	}
	if len(servers) == 0 {
		fmt.Println(theme.MutedStyle.Render("No servers configured."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tUSER\tAUTH\tSKILLS DIR")
	for _, srv := range servers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			srv.ID, srv.Name, srv.Address(), srv.Username, srv.Auth.Type, srv.RemoteSkillsDir)
	}
	return w.Flush()
}

// ServersAddCmd adds or updates a server
type ServersAddCmd struct {
	Auth           string `help:"Authentication method" enum:"agent,key,password" default:"agent"`
	CommandTimeout int    `help:"Per-command timeout in seconds (default: settings or 30)"`
	ConfigDir      string `help:"Remote config directory" default:"${remote_config_dir}"`
	ConnectTimeout int    `help:"Connect timeout in seconds (default: settings or 10)"`
	Host           string `help:"Host name or address" required:""`
	ID             string `help:"Server id; generated when empty"`
	Key            string `help:"Private key path for key auth" type:"path"`
	Name           string `help:"Display name (default: host)"`
	Port           int    `help:"SSH port" default:"22"`
	Repo           string `help:"Skills repository on the server"`
	SkillsDir      string `help:"Remote skills directory" default:"${remote_skills_dir}"`
	User           string `help:"SSH user name" required:"" short:"u"`
}

// Run executes the add command
func (s *ServersAddCmd) Run(container *Container) error {
	server := domain.ServerProfile{
		ID:                 s.ID,
		Name:               s.Name,
		Host:               s.Host,
		Port:               s.Port,
		Username:           s.User,
		Auth:               domain.AuthMethod{Type: authKind(s.Auth), PrivateKeyPath: s.Key},
		RemoteRepoPath:     s.Repo,
		RemoteConfigDir:    s.ConfigDir,
		RemoteSkillsDir:    s.SkillsDir,
		ConnectTimeoutSecs: s.ConnectTimeout,
		CommandTimeoutSecs: s.CommandTimeout,
	}
	if server.ConnectTimeoutSecs == 0 {
		server.ConnectTimeoutSecs = config.IntOr(container.Settings.ConnectTimeoutSecs, domain.DefaultConnectTimeoutSecs)
	}
	if server.CommandTimeoutSecs == 0 {
		server.CommandTimeoutSecs = config.IntOr(container.Settings.CommandTimeoutSecs, domain.DefaultCommandTimeoutSecs)
	}

	saved, err := container.RemoteService.SaveServer(context.Background(), server)
	if err != nil {
		return err
	}
	fmt.Printf("Saved server %s (%s)\n", theme.ServerStyle.Render(saved.Name), saved.ID)
	if saved.Auth.Type == domain.AuthPassword {
		fmt.Printf("Store the password with: skillpilot servers secret %s\n", saved.ID)
	}
	return nil
}

func authKind(s string) domain.AuthMethodKind {
	switch s {
	case "key":
		return domain.AuthKey
	case "password":
		return domain.AuthPassword
	default:
		return domain.AuthAgent
	}
}

// ServersDelCmd deletes a server
type ServersDelCmd struct {
	ID string `arg:"" help:"Server id"`
}

// Run executes the del command
func (s *ServersDelCmd) Run(container *Container) error {
	if err := container.RemoteService.DeleteServer(context.Background(), s.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted server %s\n", s.ID)
	return nil
}

// ServersTestCmd tests connections
type ServersTestCmd struct {
	All bool   `help:"Test every configured server"`
	ID  string `arg:"" optional:"" help:"Server id"`
}

// Run executes the test command
func (s *ServersTestCmd) Run(container *Container) error {
	ctx := context.Background()
	if s.All == (s.ID != "") {
		return fmt.Errorf("pass a server id or --all")
	}

	results := make(map[string]domain.ConnectionStatus)
	if s.All {
		var err error
		results, err = container.RemoteService.TestConnections(ctx)
		if err != nil {
			return err
		}
	} else {
		status, err := container.RemoteService.TestConnection(ctx, s.ID)
		if err != nil {
			return err
		}
		results[s.ID] = status
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	failed := 0
	for _, id := range ids {
		status := results[id]
		if status.State != domain.StateConnected {
			failed++
		}
		fmt.Printf("%s: %s\n", theme.ServerStyle.Render(id), theme.ConnectionStatus(status))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d connection(s) failed", failed, len(ids))
	}
	return nil
}

// ServersStatusCmd connects to servers and lists their skills directories
type ServersStatusCmd struct {
	ID string `arg:"" optional:"" help:"Server id (default: all)"`
}

// Run executes the status command
func (s *ServersStatusCmd) Run(container *Container) error {
	ctx := context.Background()

	var ids []string
	if s.ID != "" {
		ids = []string{s.ID}
	} else {
		servers, err := container.RemoteService.ListServers(ctx)
		if err != nil {
			return err
		}
		for _, srv := range servers {
			ids = append(ids, srv.ID)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVER\tLINKS\tBROKEN\tCONNECTION")
	for _, id := range ids {
		links, broken := "-", "-"
		env, err := container.RemoteService.Environment(ctx, id)
		if err != nil {
			return err
		}
		entries, err := container.LinkService(env).ListLinks(ctx, env.SkillsDir)
		if err == nil {
			n := 0
			for _, e := range entries {
				if e.Status == domain.LinkBroken {
					n++
				}
			}
			links, broken = fmt.Sprint(len(entries)), fmt.Sprint(n)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			id, links, broken, theme.ConnectionStatus(container.RemoteService.ConnectionStatus(id)))
	}
	return w.Flush()
}

// ServersInitCmd creates the remote layout
type ServersInitCmd struct {
	ID string `arg:"" help:"Server id"`
}

// Run executes the init command
func (s *ServersInitCmd) Run(container *Container) error {
	if err := container.RemoteService.InitRemoteConfig(context.Background(), s.ID); err != nil {
		return err
	}
	fmt.Printf("Initialized %s\n", theme.ServerStyle.Render(s.ID))
	return nil
}

// ServersSecretCmd stores a server secret in the OS keychain
type ServersSecretCmd struct {
	ID    string `arg:"" help:"Server id"`
	Value string `help:"Secret value; read from stdin when omitted"`
}

// Run executes the secret command
func (s *ServersSecretCmd) Run(container *Container) error {
	secret := s.Value
	if secret == "" {
		fmt.Fprint(os.Stderr, "Secret: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read secret: %w", err)
		}
		secret = strings.TrimRight(line, "\r\n")
	}
	if secret == "" {
		return fmt.Errorf("secret is empty")
	}

	if err := container.RemoteService.SaveSecret(context.Background(), s.ID, secret); err != nil {
		return err
	}
	fmt.Printf("Stored secret for %s\n", s.ID)
	return nil
}
