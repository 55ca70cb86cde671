// Comando requirements imprime la lista de compra de materiales de una empresa.
//
//	go run ./cmd/requirements -company <uuid> 2024-05 2024-06
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/jhoicas/Producao-api/internal/application/dto"
	"github.com/jhoicas/Producao-api/internal/application/requirements"
	"github.com/jhoicas/Producao-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Producao-api/pkg/config"
	"github.com/jhoicas/Producao-api/pkg/logger"
)

func main() {
	companyID := flag.String("company", "", "id de la empresa (tenant)")
	flag.Parse()
	if *companyID == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "uso: requirements -company <id> YYYY-MM [YYYY-MM ...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := requirements.NewMaterialRequirementsUseCase(
		postgres.NewProjectionRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewBOMRepository(pool),
		postgres.NewMaterialRepository(pool),
		postgres.NewProductionLotRepository(pool),
		cfg.Planning.LoadTimeout(),
		log,
	)
	resp, err := uc.Compute(ctx, *companyID, flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("cálculo de necesidades")
		pool.Close()
		os.Exit(1)
	}
	if err := writeTable(os.Stdout, resp); err != nil {
		log.Error().Err(err).Msg("escribir tabla")
	}
}

// writeTable imprime una fila por material con las columnas del cálculo.
func writeTable(w io.Writer, resp *dto.MaterialRequirementsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CÓDIGO\tMATERIAL\tUN\tBRUTA\tESTAMPARIA\tTINGIMENTO\tFÁBRICA\tTERMINADO\tWIP\tDISPONIBLE\tCOMPRAR\t")
	for _, r := range resp.Requirements {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Code, r.Name, r.Unit,
			r.GrossRequirement.StringFixed(2),
			r.StockEstamparia.StringFixed(2),
			r.StockTingimento.StringFixed(2),
			r.StockFabrica.StringFixed(2),
			r.FinishedProductCredit.StringFixed(2),
			r.WIPCredit.StringFixed(2),
			r.TotalAvailable.StringFixed(2),
			r.QuantityToPurchase.StringFixed(2),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nperíodos: %v  materiales: %d\n", resp.Periods, resp.Total)
	if len(resp.UnconfiguredProducts) > 0 {
		fmt.Fprintf(w, "productos sin ficha técnica: %v\n", resp.UnconfiguredProducts)
	}
	return nil
}
