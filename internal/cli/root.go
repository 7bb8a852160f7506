// Package cli implements the timesheet command-line surface over the stores
// and facades.
package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MoroniPereira/TIME-SHEET/internal/api"
	"github.com/MoroniPereira/TIME-SHEET/internal/config"
	"github.com/MoroniPereira/TIME-SHEET/internal/router"
	"github.com/MoroniPereira/TIME-SHEET/internal/service"
	"github.com/MoroniPereira/TIME-SHEET/internal/session"
	"github.com/MoroniPereira/TIME-SHEET/internal/storage"
	"github.com/MoroniPereira/TIME-SHEET/internal/timesheet"
	"github.com/MoroniPereira/TIME-SHEET/internal/validate"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Timesheet – employee management and personal time tracking",
	Long: `timesheet is a client for the employee-management API. It keeps the
session and personal time entries under ~/.config/timesheet/.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(navCmd)
}

// app bundles the wired components behind each command.
type app struct {
	cfg       config.Config
	log       *zap.Logger
	session   *session.Store
	auth      service.AuthService
	employees service.EmployeeService
	entries   *timesheet.Store
	guard     *router.Router
}

// newApp constructs the process-wide object graph: config, bridge, session,
// transport, facades, guard.
func newApp() *app {
	log := zap.NewNop()
	if verbose {
		log, _ = zap.NewDevelopment()
	}

	cfg := config.Load()
	kv := storage.NewFileStore(cfg.DataDir, log)
	sess := session.New(kv, log)
	client := api.New(cfg.BaseURL, cfg.Timeout, sess, log)

	entries := timesheet.New(kv, log)
	entries.Load()

	return &app{
		cfg:       cfg,
		log:       log,
		session:   sess,
		auth:      service.NewAuthService(client, sess, log),
		employees: service.NewEmployeeService(client, log),
		entries:   entries,
		guard:     router.AppRouter(sess, log),
	}
}

// requireAuth fails fast before a facade call that needs a session.
func (a *app) requireAuth() error {
	if !a.session.IsAuthenticated() {
		return errors.New("not logged in (run: timesheet login)")
	}
	if a.session.TokenExpired() {
		return errors.New("session token expired (run: timesheet refresh or login again)")
	}
	return nil
}

// parseID parses a positive numeric id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// fieldError flattens per-field validation failures into one error.
func fieldError(errs validate.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msg := ""
	for _, f := range fields {
		if msg != "" {
			msg += "; "
		}
		msg += f + ": " + errs[f]
	}
	return errors.New(msg)
}
