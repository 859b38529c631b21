package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"versekids/internal/config"
	"versekids/internal/database"
	"versekids/internal/models"
	"versekids/internal/repository"
	"versekids/internal/security"
	"versekids/internal/service"
	"versekids/internal/validation"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "hash-key":
		err = runHashKey(os.Args[2:])
	case "export", "import", "token", "override":
		err = withDB(ctx, logger, os.Args[1], os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

// withDB opens the configured database and dispatches the commands that need it
func withDB(ctx context.Context, logger *slog.Logger, cmd string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		return err
	}

	switch cmd {
	case "export":
		return runExport(ctx, logger, service.NewBackupService(db, logger), args)
	case "import":
		return runImport(ctx, logger, service.NewBackupService(db, logger), args)
	case "token":
		return runToken(ctx, cfg, repository.NewAccountRepository(db), args)
	default:
		return runOverride(ctx, logger, repository.NewOverrideRepository(db), args)
	}
}

func runExport(ctx context.Context, logger *slog.Logger, backups *service.BackupService, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	_ = fs.Parse(args)

	path := *output
	if path == "" {
		path = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	logger.Info("exporting database", "path", path)
	if err := backups.Export(ctx, path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	logger.Info("export complete", "bytes", info.Size())
	return nil
}

func runImport(ctx context.Context, logger *slog.Logger, backups *service.BackupService, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	input := fs.String("input", "", "Input file path (required)")
	_ = fs.Parse(args)

	if *input == "" {
		fs.PrintDefaults()
		return errors.New("-input flag is required")
	}

	logger.Info("importing database", "path", *input)
	if err := backups.Import(ctx, *input); err != nil {
		return err
	}
	logger.Info("import complete")
	return nil
}

func runToken(ctx context.Context, cfg *config.Config, accounts *repository.AccountRepository, args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	accountID := fs.String("account", "", "Account ID or email (required)")
	ttl := fs.Duration("ttl", cfg.TokenDuration, "Token lifetime")
	_ = fs.Parse(args)

	if *accountID == "" {
		fs.PrintDefaults()
		return errors.New("-account flag is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set to issue tokens")
	}

	var (
		account *models.Account
		err     error
	)
	if strings.Contains(*accountID, "@") {
		account, err = accounts.GetByEmail(ctx, *accountID)
	} else {
		account, err = accounts.GetByID(ctx, *accountID)
	}
	if err != nil {
		return fmt.Errorf("failed to find account %q: %w", *accountID, err)
	}

	token, err := security.NewTokenIssuer(cfg.JWTSecret, *ttl).Issue(account.ID, account.IsAdmin)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runHashKey(args []string) error {
	fs := flag.NewFlagSet("hash-key", flag.ExitOnError)
	key := fs.String("key", "", "Admin key to hash (read from stdin when empty)")
	_ = fs.Parse(args)

	plain := *key
	if plain == "" {
		fmt.Fprint(os.Stderr, "Admin key: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read key: %w", err)
		}
		plain = strings.TrimSpace(line)
	}

	hash, err := security.HashAdminKey(plain)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func runOverride(ctx context.Context, logger *slog.Logger, overrides *repository.OverrideRepository, args []string) error {
	fs := flag.NewFlagSet("override", flag.ExitOnError)
	enabled := fs.Bool("enabled", false, "Enable the override")
	unlockAll := fs.Bool("unlock-all", false, "Unlock every gated activity")
	day := fs.Int("day", 0, "Force the day of week (1=Monday ... 7=Sunday, 0 for none)")
	show := fs.Bool("show", false, "Print the current override and exit")
	_ = fs.Parse(args)

	if *show {
		cfg, err := overrides.Get(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("enabled=%t unlock_all=%t force_day_of_week=%d\n", cfg.Enabled, cfg.UnlockAll, cfg.ForceDayOfWeek)
		return nil
	}

	if err := validation.ValidateDayOfWeek(*day); err != nil {
		return err
	}
	cfg := models.OverrideConfig{Enabled: *enabled, UnlockAll: *unlockAll, ForceDayOfWeek: *day}
	if err := overrides.Set(ctx, cfg); err != nil {
		return err
	}
	logger.Info("override updated", "enabled", cfg.Enabled, "unlock_all", cfg.UnlockAll, "force_day_of_week", cfg.ForceDayOfWeek)
	return nil
}

func printUsage() {
	fmt.Println("Verse Kids Admin Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  admin export [-output file]              Export learners and progress to JSON")
	fmt.Println("  admin import -input file                 Import a JSON backup (merges)")
	fmt.Println("  admin token -account id|email [-ttl d]   Issue a bearer token for an account")
	fmt.Println("  admin hash-key [-key k]                  Print a bcrypt hash for ADMIN_KEY_HASH")
	fmt.Println("  admin override [-enabled] [-unlock-all] [-day n] [-show]")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE          Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./versekids.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  JWT_SECRET       Secret used to sign bearer tokens")
}
