package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "finance-admin",
		Usage: "maintenance tasks for the finance tracker database",
		Commands: []*cli.Command{
			{
				Name:  "recompute-balances",
				Usage: "rebuild current balances from opening balances and transaction history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "account",
						Usage: "only recompute the account with this UUID",
					},
				},
				Action: recomputeBalances,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("finance-admin")
	}
}

func openStorage() (*storage.Storage, *logrus.Logger, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.SetupLogging(env.LogLevel)

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return nil, nil, err
	}
	return dbStorage, logger, nil
}

func recomputeBalances(c *cli.Context) error {
	var accountID *uuid.UUID
	if raw := c.String("account"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			return fmt.Errorf("--account: %w", err)
		}
		accountID = &id
	}

	dbStorage, logger, err := openStorage()
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, 1, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Reader, delegator)
	count, err := svc.Account.RecomputeBalances(context.Background(), accountID)
	if err != nil {
		return err
	}
	logger.WithField("accounts", count).Info("recompute-balances complete")
	return nil
}

func migrate(c *cli.Context) error {
	dbStorage, logger, err := openStorage()
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	return storage.MigrateUp(dbStorage.DB, logger)
}
