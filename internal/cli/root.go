package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/iudanet/drfriend/internal/cli/iocli"
	"github.com/iudanet/drfriend/internal/config"
	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/internal/logger"
	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/profile"
	"github.com/iudanet/drfriend/internal/server"
	"github.com/iudanet/drfriend/internal/storage"
)

// annotationNoStorage помечает команды, которым не нужна база данных
const annotationNoStorage = "drfriend/no-storage"

// BuildInfo describes the binary, set via ldflags in cmd/drfriend
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Command is the drfriend root command together with the resources it opens
type Command struct {
	root *cobra.Command

	info       BuildInfo
	fs         afero.Fs
	configFile string

	cfg       *config.Config
	logger    *slog.Logger
	kv        storage.KV
	registry  *prometheus.Registry
	lifecycle *lifecycle.Manager
	profiles  *profile.Store
	cli       *Cli
}

// NewCommand builds the command tree. fs is used for uploaded and downloaded files.
func NewCommand(info BuildInfo, fs afero.Fs) *Command {
	c := &Command{
		info: info,
		fs:   fs,
	}

	root := &cobra.Command{
		Use:           "drfriend",
		Short:         "Local organizer for medical bills, prescriptions and reports",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(fmt.Sprintf("drfriend\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "Path to config file (yaml, toml or json)")

	root.AddCommand(
		c.uploadCommand(),
		c.listCommand(),
		c.countsCommand(),
		c.showCommand(),
		c.downloadCommand(),
		c.deleteCommand(),
		c.trashCommand(),
		c.restoreCommand(),
		c.purgeCommand(),
		c.profileCommand(),
		c.chatCommand(),
		c.serveCommand(),
	)

	c.root = root
	return c
}

// Root returns the underlying cobra command
func (c *Command) Root() *cobra.Command {
	return c.root
}

// Execute runs the command line and releases the database afterwards
func (c *Command) Execute(ctx context.Context) error {
	defer c.Close()
	return c.root.ExecuteContext(ctx)
}

// Close releases the database if a command opened it
func (c *Command) Close() {
	if c.kv == nil {
		return
	}
	if err := c.kv.Close(); err != nil {
		c.logger.Error("failed to close database", "error", err)
	}
	c.kv = nil
}

// setup загружает конфигурацию, настраивает логгер и открывает хранилище
func (c *Command) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), c.configFile)
	if err != nil {
		return err
	}
	log, err := logger.Setup(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = log

	stream := iocli.NewStream(cmd.InOrStdin(), cmd.OutOrStdout())
	if cmd.Annotations[annotationNoStorage] == "true" || cmd.Name() == "help" {
		c.cli = New(stream, nil, nil, c.fs, log, cfg.MaxUploadBytes)
		return nil
	}

	kv, err := openStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	log.Debug("storage opened", "backend", cfg.Backend, "path", cfg.DBPath)

	c.kv = kv
	c.registry = prometheus.NewRegistry()
	c.lifecycle = lifecycle.NewManager(kv, log, lifecycle.WithRegisterer(c.registry))
	c.profiles = profile.NewStore(kv, log)
	c.cli = New(stream, c.lifecycle, c.profiles, c.fs, log, cfg.MaxUploadBytes)
	return nil
}

func categoryArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	_, err := models.ParseCategory(args[0])
	return err
}

func (c *Command) uploadCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:       "upload <category> <file>",
		Short:     "Store a file in a category",
		Example:   "  drfriend upload bill ./march.pdf --name \"March electricity\"",
		Args:      categoryArgs,
		ValidArgs: []string{"bill", "prescription", "report", "other"},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := models.ParseCategory(args[0])
			return c.cli.runUpload(cmd.Context(), category, args[1], name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the file name)")
	cmd.Flags().Int64(config.KeyMaxUploadBytes, config.Default().MaxUploadBytes, "Maximum upload size in bytes")
	return cmd
}

func (c *Command) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List records of one or all categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return c.cli.runList(cmd.Context(), category)
		},
	}
}

func (c *Command) countsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show the number of records per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runCounts(cmd.Context())
		},
	}
}

func (c *Command) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show record details, looking in records and trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runShow(cmd.Context(), args[0])
		},
	}
}

func (c *Command) downloadCommand() *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Save the content of a record to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runDownload(cmd.Context(), args[0], output, force)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (defaults to the record name)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func (c *Command) deleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Move a record to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runDelete(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *Command) trashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trash",
		Short: "List trashed records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runTrash(cmd.Context())
		},
	}
}

func (c *Command) restoreCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a record from the trash to its category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runRestore(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *Command) purgeCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge <id>",
		Short: "Permanently delete a record from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runPurge(cmd.Context(), args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (c *Command) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the user profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runProfileShow(cmd.Context())
		},
	}

	var name, email, phone, image string
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   "Update profile fields, unset flags keep their value",
		Example: "  drfriend profile set --name Ann --email ann@example.com --image ./me.png",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd profileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				upd.Name = &name
			}
			if flags.Changed("email") {
				upd.Email = &email
			}
			if flags.Changed("phone") {
				upd.Phone = &phone
			}
			if flags.Changed("image") {
				upd.ImagePath = &image
			}
			return c.cli.runProfileSet(cmd.Context(), upd)
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "Full name")
	setCmd.Flags().StringVar(&email, "email", "", "Email address")
	setCmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	setCmd.Flags().StringVar(&image, "image", "", "Path to an avatar image, empty removes it")

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the profile, records are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runProfileClear(cmd.Context(), yes)
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd.AddCommand(showCmd, setCmd, clearCmd)
	return cmd
}

func (c *Command) chatCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "chat <message>",
		Short:       "Ask the help assistant",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{annotationNoStorage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cli.runChat(args)
		},
	}
}

func (c *Command) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(ctx, c.cfg, server.Deps{
				KV:        c.kv,
				Lifecycle: c.lifecycle,
				Profile:   c.profiles,
				Registry:  c.registry,
				Logger:    c.logger,
				Version:   c.info.Version,
			})

			c.cli.io.Printf("Serving drfriend API on http://%s\n", c.cfg.Addr)
			if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	config.RegisterServerFlags(cmd.Flags())
	return cmd
}
