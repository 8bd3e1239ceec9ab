package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/piresc/campusride/internal/pkg/config"
	"github.com/piresc/campusride/internal/pkg/database"
	firebasepkg "github.com/piresc/campusride/internal/pkg/firebase"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/users"
	userGateway "github.com/piresc/campusride/services/users/gateway"
	userRepository "github.com/piresc/campusride/services/users/repository"
	userUsecase "github.com/piresc/campusride/services/users/usecase"
	"go.uber.org/zap"
)

const usage = `usage:
  provision create -email <email> -password <password> -name <name> -role <student|driver|admin>
  provision delete -id <user id>`

// operator acts with admin rights on behalf of whoever runs the CLI
var operator = &models.Session{UserID: "provision-cli", Role: models.RoleAdmin}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/campusride.env"))
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userUC, closeFn, err := newUserUC(ctx, configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer closeFn()

	switch os.Args[1] {
	case "create":
		err = create(ctx, userUC, os.Args[2:])
	case "delete":
		err = remove(ctx, userUC, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func create(ctx context.Context, userUC users.UserUC, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	var req models.ProvisionRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "initial password")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Role, "role", string(models.RoleStudent), "student, driver or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := userUC.Provision(ctx, operator, req)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s) as %s\n", user.ID, user.Email, user.Role)
	return nil
}

func remove(ctx context.Context, userUC users.UserUC, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := userUC.Deprovision(ctx, operator, *id); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", *id)
	return nil
}

// newUserUC wires the user use case. Redis is optional here; without it the
// profile cache is skipped.
func newUserUC(ctx context.Context, configs *models.Config) (users.UserUC, func(), error) {
	app, err := firebasepkg.NewApp(ctx, configs.Firebase)
	if err != nil {
		return nil, nil, err
	}
	firestoreClient, err := database.NewFirestoreClient(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, nil, err
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, profile cache entries may stay stale until they expire", logger.Err(err))
		redisClient = nil
	}

	closeFn := func() {
		if redisClient != nil {
			redisClient.Close()
		}
		firestoreClient.Close()
	}

	userRepo := userRepository.NewUserRepository(configs, firestoreClient, redisClient)
	identityGW := userGateway.NewIdentityGW(authClient, configs.Firebase)
	userUC, err := userUsecase.NewUserUC(configs, userRepo, identityGW)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return userUC, closeFn, nil
}
