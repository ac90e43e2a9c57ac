package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jengzang/putusan-backend-go/internal/auth"
	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/internal/repository"
	"github.com/jengzang/putusan-backend-go/internal/service"
)

type seedUser struct {
	nama  string
	email string
	role  string
}

var defaultSeedUsers = []seedUser{
	{nama: "Administrator", email: "admin@putusan.local", role: models.RoleAdmin},
	{nama: "Pengguna Contoh", email: "user@putusan.local", role: models.RoleUser},
}

func newSeedUsersCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed-users",
		Short: "Create the default admin and user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			db, dialect, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			tokens := auth.NewTokenManager(a.cfg.JWTSecret, a.cfg.SessionTTL)
			svc := service.NewAuthService(repository.NewUserRepository(db, dialect), tokens, a.logger)

			for _, u := range defaultSeedUsers {
				_, err := svc.CreateUser(cmd.Context(), u.nama, u.email, password, u.role)
				switch {
				case errors.Is(err, models.ErrConflict):
					fmt.Fprintf(cmd.OutOrStdout(), "%s exists, skipped\n", u.email)
				case err != nil:
					return err
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s created (%s)\n", u.email, u.role)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "password", "password for the seeded accounts")
	return cmd
}
