package worker

// resumen_worker.go
// Renders the account-statement PDF for a client and chains an email job
// delivering it. Runs off QueueResumen.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/infra"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/repository"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ResumenWorker struct {
	clientes    repository.ClienteRepository
	listas      repository.ListaPrecioRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewResumenWorker(clientes repository.ClienteRepository, listas repository.ListaPrecioRepository, dispatcher *Dispatcher, storagePath string) *ResumenWorker {
	return &ResumenWorker{
		clientes:    clientes,
		listas:      listas,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

// Process generates the statement and enqueues its delivery.
func (w *ResumenWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload service.ResumenJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("resumen_worker: invalid payload: %w", err)
	}
	clienteID, err := uuid.Parse(payload.ClienteID)
	if err != nil {
		return fmt.Errorf("resumen_worker: invalid cliente_id: %w", err)
	}

	cliente, err := w.clientes.ObtenerPorID(ctx, clienteID)
	if err != nil {
		return fmt.Errorf("resumen_worker: load cliente: %w", err)
	}
	if cliente.Email == nil || *cliente.Email == "" {
		// checked at enqueue time; the address may have been cleared since
		log.Warn().Str("cliente_id", payload.ClienteID).Msg("resumen_worker: cliente sin email — skipping")
		return nil
	}

	listas, err := w.listas.Listar(ctx)
	if err != nil {
		return fmt.Errorf("resumen_worker: load listas: %w", err)
	}
	listaNombre := ""
	if resueltaID := service.ResolverListaPrecio(cliente, listas); resueltaID != uuid.Nil {
		for _, l := range listas {
			if l.ID == resueltaID {
				listaNombre = l.Nombre
				break
			}
		}
	}

	pdfPath, err := infra.GenerateResumenPDF(cliente, service.ClasificarSaldo(cliente.Saldo), listaNombre, w.storagePath)
	if err != nil {
		return fmt.Errorf("resumen_worker: generate pdf: %w", err)
	}

	emailPayload := EmailJobPayload{
		ToEmail: *cliente.Email,
		Subject: "Resumen de cuenta corriente",
		Body:    fmt.Sprintf("Estimado/a %s: adjuntamos su resumen de cuenta.", cliente.RazonSocial),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EncolarEmail(ctx, emailPayload); err != nil {
		return fmt.Errorf("resumen_worker: enqueue email: %w", err)
	}

	log.Info().Str("cliente_id", payload.ClienteID).Str("pdf", pdfPath).Msg("resumen_worker: statement generated")
	return nil
}
