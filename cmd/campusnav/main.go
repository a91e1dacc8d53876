// campusnav is the command line client for the CampusNav server: account
// management, the building catalog, and a locally persisted schedule draft
// synced with the server on demand.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/campusnav/campusnav/internal/client/api"
	"github.com/campusnav/campusnav/internal/client/editor"
	"github.com/campusnav/campusnav/internal/client/storage"
	"github.com/campusnav/campusnav/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "campusnav",
	Short: "Campus map and class schedule client",
	Long: `campusnav keeps a local draft of your class schedule, lets you edit it
offline, and syncs it with the CampusNav server.

Start with 'campusnav register' or 'campusnav login', then manage your
schedule with 'campusnav schedule' and check today's classes with
'campusnav today'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(buildingsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(todayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// clientConfig loads CLI configuration with env overrides.
func clientConfig() (*config.Config, error) {
	return config.LoadClientConfig(filepath.Join("configs", "config.yaml"))
}

// openStore opens the state directory from config.
func openStore(cfg *config.Config) (*storage.Store, error) {
	return storage.NewStore(cfg.Client.StateDir)
}

// requireSession returns the cached session or an error telling the user to
// log in.
func requireSession(store *storage.Store) (*storage.Session, error) {
	session, err := store.LoadSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("not logged in, run 'campusnav login' first")
	}
	return session, nil
}

// clientContext bundles what most commands need.
type clientContext struct {
	cfg    *config.Config
	store  *storage.Store
	client *api.Client
}

func newClientContext() (*clientContext, error) {
	cfg, err := clientConfig()
	if err != nil {
		return nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	return &clientContext{
		cfg:    cfg,
		store:  store,
		client: api.NewClient(cfg.Client.ServerURL),
	}, nil
}

// loadDraft opens the editor over the locally persisted draft.
func (cc *clientContext) loadDraft() (*editor.Editor, error) {
	ed := editor.NewEditor(cc.store)
	if err := ed.LoadLocal(); err != nil {
		return nil, err
	}
	return ed, nil
}
