// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads reference districts and development fixtures.
//
// # Steps
//
//  1. Load configuration, optionally revert (-reset) and run migrations.
//  2. Read the district CSV and precompute near-district bands.
//  3. Upsert districts, adjacency rows and (optionally) fixture members in one
//     transaction.
//  4. Print a development access token when -token is set.
//
// Usage:
//
//	go run ./cmd/seed -reset -members -token alice
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/core/member"
	"github.com/taibuivan/boardbuddy/internal/platform/config"
	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	"github.com/taibuivan/boardbuddy/internal/platform/migration"
	pgstore "github.com/taibuivan/boardbuddy/internal/platform/postgres"
	"github.com/taibuivan/boardbuddy/internal/platform/sec"
)

// devPassword is shared by every fixture member.
const devPassword = "boardbuddy-dev"

func main() {
	reset := flag.Bool("reset", false, "revert every migration before seeding (drops all data)")
	withMembers := flag.Bool("members", false, "insert development fixture members")
	tokenFor := flag.String("token", "", "print an access token for this username")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", constants.AppName+"-seed"))

	must(log, config.LoadDotEnv(".env"), "load .env")
	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *reset {
		must(log, migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, log), "revert migrations")
	}
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	districts, index, err := loadDistricts(cfg)
	must(log, err, "load districts")

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		stats, err := district.Seed(ctx, district.NewPostgresRepository(tx), districts, index)
		if err != nil {
			return err
		}
		log.Info("districts_seeded",
			slog.Int("districts", stats.Districts),
			slog.Int("near_districts", stats.NearDistricts),
		)

		if !*withMembers {
			return nil
		}
		return seedMembers(ctx, log, member.NewPostgresRepository(tx), fixtures(districts))
	})
	must(log, err, "seed database")

	if *tokenFor != "" {
		token, err := devToken(cfg, *tokenFor)
		must(log, err, "issue development token")
		fmt.Println(token)
	}
}

func loadDistricts(cfg *config.Config) ([]district.District, *district.Index, error) {
	file, err := os.Open(cfg.DistrictSeedPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	districts, err := district.LoadCSV(file)
	if err != nil {
		return nil, nil, err
	}

	index, err := district.NewIndex(districts, cfg.SearchRadiusBands)
	if err != nil {
		return nil, nil, err
	}
	return districts, index, nil
}

// fixtures places one development member in each of the first districts.
func fixtures(districts []district.District) []member.Fixture {
	names := []struct{ username, nickname string }{
		{"alice", "meeple"},
		{"bob", "dicey"},
		{"carol", "worker_placement"},
	}

	result := make([]member.Fixture, 0, len(names))
	for i, name := range names {
		if i >= len(districts) {
			break
		}
		result = append(result, member.Fixture{
			Username: name.username,
			Nickname: name.nickname,
			Password: devPassword,
			Location: districts[i].Key,
			Radius:   5,
		})
	}
	return result
}

func seedMembers(ctx context.Context, log *slog.Logger, writer member.Writer, fixtures []member.Fixture) error {
	for _, fixture := range fixtures {
		hash, err := sec.HashPassword(fixture.Password)
		if err != nil {
			return err
		}
		id, err := writer.SaveMember(ctx, fixture, hash)
		if err != nil {
			return err
		}
		log.Info("member_seeded", slog.String("username", fixture.Username), slog.Int64("id", id))
	}
	return nil
}

func devToken(cfg *config.Config, username string) (string, error) {
	if cfg.JWTPrivKeyPath == "" {
		return "", fmt.Errorf("JWT_PRIVATE_KEY_PATH is required to issue tokens")
	}
	service, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	if err != nil {
		return "", err
	}
	return service.GenerateAccessToken(username, sec.RoleMember, constants.DevTokenTTL)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure", slog.String("context", context), slog.Any("error", err))
		os.Exit(1)
	}
}
