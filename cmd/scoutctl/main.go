package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/infra/auth"
	"scout/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Apply the embedded schema migrations
// - token:   Issue an access token for an account

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// migrate parameters
	migrateDSN := migrateCmd.String("dsn", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	migrateCommand := migrateCmd.String("command", "up", "Goose command: "+strings.Join(migrations.Commands, ", "))

	// token parameters
	tokenAccount := tokenCmd.Int64("account", 0, "Account ID to issue the token for")
	tokenRoles := tokenCmd.String("roles", "user", "Comma separated roles (user, admin)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateFlags{
			cmd:     migrateCmd,
			dsn:     migrateDSN,
			command: migrateCommand,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			account: tokenAccount,
			roles:   tokenRoles,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate migrateFlags
	Token   tokenFlags
}

type migrateFlags struct {
	cmd     *flag.FlagSet
	dsn     *string
	command *string
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	account *int64
	roles   *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	if *flags.Migrate.dsn == "" {
		return errors.New("--dsn flag or DATABASE_URL is required for migrate command")
	}

	command := *flags.Migrate.command
	if !slices.Contains(migrations.Commands, command) {
		return errors.Errorf("unsupported migrate command: %s", command)
	}

	db, err := migrations.Open(*flags.Migrate.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return migrations.Run(ctx, logger, db, command)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	accountID, err := entity.NewAccountID(*flags.Token.account)
	if err != nil {
		return errors.Wrap(err, "--account must be a positive account ID")
	}

	roles := entity.RolesFromStrings(strings.Split(*flags.Token.roles, ","))
	if len(roles) == 0 {
		return errors.Errorf("no known role in %q", *flags.Token.roles)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(accountID, roles.ToStrings())
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}

func printUsage() {
	fmt.Println("Usage: scoutctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Apply database schema migrations")
	fmt.Println("  token       Issue an access token for an account")
	fmt.Println("")
	fmt.Println("Use 'scoutctl <command> -h' for more information about a command.")
}
