package admin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"PortfolioGolang/database"
	blogRepository "PortfolioGolang/internal/api/blog/repository"
	blogService "PortfolioGolang/internal/api/blog/service"
	contactRepository "PortfolioGolang/internal/api/contact/repository"
	contactService "PortfolioGolang/internal/api/contact/service"
	"PortfolioGolang/internal/config"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envKeys are read by the store and media constructors. The CLI accepts each of
// them from a config file, a flag, KEY or PORTFOLIO_KEY.
var envKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DATABASE_URL", "SQLITE_PATH",
	"MEDIA_BACKEND", "MEDIA_ROOT",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_BUCKET_NAME",
	"LOG_LEVEL",
}

// Opener connects an Admin once configuration is settled. The returned func
// releases what it opened.
type Opener func(ctx context.Context, out io.Writer) (*Admin, func(), error)

// NewRootCommand builds portfolioctl wired to the configured store.
func NewRootCommand() *cobra.Command {
	return newRootCommand(openFromEnv)
}

func newRootCommand(open Opener) *cobra.Command {
	var (
		cfgFile string
		adm     *Admin
		closeFn func()
	)

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Manage portfolio content",
		Long:          "portfolioctl migrates the store, seeds and lists content, imports Markdown posts and reads contact messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help and completion need no store.
			if cmd.RunE == nil {
				return nil
			}
			if err := initializeConfig(cmd, cfgFile); err != nil {
				return err
			}

			ctx := contextPkg.WithRequestID(cmd.Context(), "cli")
			cmd.SetContext(ctx)

			a, closer, err := open(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			adm, closeFn = a, closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closeFn != nil {
				closeFn()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	flags.String("db-driver", "", "store driver: postgres or sqlite")
	flags.String("sqlite-path", "", "sqlite database file")
	flags.String("media-root", "", "local media directory")

	admin := func() *Admin { return adm }

	root.AddCommand(
		migrateCommand(admin),
		seedCommand(admin),
		importPostsCommand(admin),
		listCommand(admin),
		contactsCommand(admin),
		mediaCommand(admin),
	)

	return root
}

func initializeConfig(cmd *cobra.Command, cfgFile string) error {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	for _, key := range envKeys {
		if err := v.BindEnv(strings.ToLower(key), "PORTFOLIO_"+key, key); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"db-driver":   "db_driver",
		"sqlite-path": "sqlite_path",
		"media-root":  "media_root",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, key := range envKeys {
		if value := v.GetString(strings.ToLower(key)); value != "" {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func openFromEnv(ctx context.Context, out io.Writer) (*Admin, func(), error) {
	logger := log.NewLogger()

	db, err := database.New(database.DriverFromEnv())
	if err != nil {
		return nil, nil, err
	}

	storage, _, err := config.NewMediaStorage(logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	bs := blogService.NewBlogService(logger, blogRepository.New(db, logger), utils.New())
	cs := contactService.NewContactService(logger, contactRepository.New(db, logger), nil)

	return New(db, logger, out, bs, cs, storage), func() { db.Close() }, nil
}

func migrateCommand(admin func() *Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return admin().Migrate(cmd.Context())
		},
	}
}

func seedCommand(admin func() *Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Insert the records of a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			_, err = admin().Seed(cmd.Context(), f)
			return err
		},
	}
}

func importPostsCommand(admin func() *Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "import-posts <file.md>...",
		Short: "Create or update blog posts from Markdown files with frontmatter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := admin().ImportPosts(cmd.Context(), args)
			return err
		},
	}
}

func listCommand(admin func() *Admin) *cobra.Command {
	return &cobra.Command{
		Use:       "list <entity>",
		Short:     "List the records of an entity",
		Long:      "List the records of an entity. Entities: " + strings.Join(Names(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := admin().List(cmd.Context(), args[0])
			return err
		},
	}
}

func contactsCommand(admin func() *Admin) *cobra.Command {
	var unread bool

	contacts := &cobra.Command{
		Use:   "contacts",
		Short: "List contact messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return admin().Contacts(cmd.Context(), unread)
		},
	}
	contacts.Flags().BoolVar(&unread, "unread", false, "only unread messages")

	contacts.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Show a contact message and mark it read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid contact id %q", args[0])
			}
			return admin().ReadContact(cmd.Context(), id)
		},
	})

	return contacts
}

func mediaCommand(admin func() *Admin) *cobra.Command {
	media := &cobra.Command{
		Use:   "media",
		Short: "Manage uploaded media",
	}

	media.AddCommand(&cobra.Command{
		Use:   "put <key> <file>",
		Short: "Upload a file to media storage under key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return admin().PutMedia(cmd.Context(), args[0], args[1])
		},
	})

	return media
}
