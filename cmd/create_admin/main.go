// Command create_admin creates an admin account, or promotes an existing one,
// directly against the configured MongoDB database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/SscSPs/garage_invoice_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/garage_invoice_app/internal/utils"
	"github.com/SscSPs/garage_invoice_app/pkg/database"
	flag "github.com/spf13/pflag"
)

const generatedPasswordLength = 20

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	username := flag.StringP("username", "u", "admin", "admin username")
	email := flag.StringP("email", "e", "admin@example.com", "admin email")
	password := flag.StringP("password", "p", "", "admin password (generated when empty)")
	flag.Parse()

	if err := run(*username, *email, *password); err != nil {
		logger.Error("Failed to create admin", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(username, email, password string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer database.CloseMongoClient(context.Background(), client)

	repos := mongodb.NewRepositoryProvider(client.Database(cfg.MongoDatabase), cfg.DBOperationTimeout)

	generated := password == ""
	if generated {
		if password, err = utils.GenerateSecureRandomString(generatedPasswordLength); err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
	}

	user, created, err := ensureAdmin(ctx, repos.UserRepo, username, email, password, cfg.BcryptCost)
	if err != nil {
		return err
	}

	if !created {
		fmt.Printf("User %q (%s) is now an admin; password unchanged.\n", user.Username, user.ID)
		return nil
	}
	fmt.Printf("Created admin %q (%s).\n", user.Username, user.ID)
	if generated {
		fmt.Printf("Generated password: %s\n", password)
	}
	return nil
}

// ensureAdmin creates the user as an admin, or flags the existing holder of
// username as admin. It reports whether a new account was created.
func ensureAdmin(ctx context.Context, users portsrepo.UserRepositoryFacade, username, email, password string, cost int) (*domain.User, bool, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return nil, false, errors.New("username is required")
	}

	existing, err := users.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		existing.IsAdmin = true
		existing.Touch(time.Now().UTC())
		if err := users.SaveUser(ctx, *existing); err != nil {
			return nil, false, fmt.Errorf("promote %s: %w", username, err)
		}
		return existing, false, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, false, fmt.Errorf("look up %s: %w", username, err)
	}

	user, err := domain.NewUser(username, email, password, cost)
	if err != nil {
		return nil, false, err
	}
	user.IsAdmin = true
	user.Touch(time.Now().UTC())
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create %s: %w", username, err)
	}
	return user, true, nil
}
