package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
)

// newTokenCmd emite um token para as rotas administrativas da API (recarga do dataset)
func newTokenCmd() *cobra.Command {
	var (
		subject   string
		role      string
		ttl       time.Duration
		secretKey string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token JWT para as rotas administrativas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secretKey == "" {
				cfg, err := config.NewConfig()
				if err != nil {
					return err
				}
				if err := cfg.ValidateSecretKey(); err != nil {
					return err
				}
				secretKey = cfg.SecretKey
			}

			auth := authenticating.NewService(&config.Config{SecretKey: secretKey})
			token, err := auth.GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "report-cli", "Identificação de quem usa o token")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "Perfil gravado no token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Validade do token")
	cmd.Flags().StringVar(&secretKey, "secret", "", "Chave de assinatura (padrão: SECRET_KEY da configuração)")

	return cmd
}
