// import_csv incorpora al almacenamiento local los pedidos de un CSV exportado
// (o editado en una planilla y guardado en EUC-KR). Solo agrega IDs que no existen.
//
// Uso: go run ./cmd/import_csv [-by 관리자] ruta/pedidos.csv
// Usa DATA_DIR y el resto de la configuración de la API; no debe correr a la vez que ella.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/order-desk/internal/application/orders"
	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/infrastructure/localstore"
	"github.com/jhoicas/order-desk/pkg/config"
	"github.com/jhoicas/order-desk/pkg/logger"
)

func main() {
	importedBy := flag.String("by", "관리자", "usuario registrado como creador de los pedidos importados")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_csv [-by usuario] ruta/pedidos.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("leer CSV")
	}
	list, err := transfer.ParseCSV(data, *importedBy)
	if err != nil {
		log.Fatal().Err(err).Msg("CSV inválido, no se importó nada")
	}

	store, err := localstore.NewFileStore(cfg.Storage.OrdersFile(), cfg.Storage.SessionFile())
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := orders.NewRepository(store, log)
	if err := repo.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar pedidos locales")
	}
	added, err := repo.Import(ctx, list)
	if err != nil {
		log.Fatal().Err(err).Msg("importar pedidos")
	}
	log.Info().
		Int("rows", len(list)).
		Int("added", added).
		Str("file", flag.Arg(0)).
		Msg("importación CSV terminada")
}
