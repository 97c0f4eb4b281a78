package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/repository"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/config"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/database"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(context.Background(), cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	users := service.NewUserService(repository.NewUserRepository(db), nil, logr)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Administrator ===")
	username := prompt(reader, "Username: ")
	name := prompt(reader, "Nama: ")

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		logr.Fatal("failed to read password", zap.Error(err))
	}

	user, err := users.Create(context.Background(), service.CreateUserRequest{
		Username: username,
		Password: string(raw),
		Name:     name,
		Role:     models.RoleAdministrator,
	})
	if err != nil {
		appErr := appErrors.FromError(err)
		fmt.Printf("Error: %s\n", appErr.Message)
		for field, msg := range appErr.Details {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		os.Exit(1)
	}

	fmt.Printf("Administrator %q created with id %d\n", user.Username, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
