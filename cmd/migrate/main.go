package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/saep-sistemas/estoque-api/pkg/config"
	"github.com/saep-sistemas/estoque-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "comando goose: up|down|status")
	dir := flag.String("dir", "migrations", "diretório das migrações SQL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := goose.OpenDBWithDriver("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexão para migração")
	}
	defer db.Close()

	log.Info().Str("cmd", *cmd).Str("dir", *dir).Msg("executando migrações")

	switch *cmd {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	default:
		fmt.Fprintln(os.Stderr, "comando desconhecido:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("migração falhou")
	}

	log.Info().Msg("migrações concluídas")
}
