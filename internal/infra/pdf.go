package infra

// pdf.go — account statement (resumen de cuenta) generation with go-pdf/fpdf.
// A4 portrait: header with business name, client identification, balance
// with CREDITO/DEBITO classification, loyalty points, assigned price list
// and the authorized-persons roster.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateResumenPDF writes the statement for a client and returns the
// absolute path of the generated file. estadoSaldo is the already-classified
// balance label (CREDITO or DEBITO); listaNombre may be empty when the
// client has no resolved price list.
func GenerateResumenPDF(cliente *model.Cliente, estadoSaldo, listaNombre, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("resumen_%s_%s.pdf", cliente.CUIT, time.Now().Format("20060102"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Bruzzone", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Resumen de Cuenta Corriente", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Client data ──────────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-45, 7, value, "", 1, "L", false, 0, "")
	}
	row("Cliente", cliente.RazonSocial)
	row("CUIT", cliente.CUIT)
	if cliente.Email != nil {
		row("Email", *cliente.Email)
	}
	if listaNombre != "" {
		row("Lista de precios", listaNombre)
	}
	if !cliente.DescuentoEspecial.IsZero() {
		row("Descuento especial", cliente.DescuentoEspecial.String()+" %")
	}
	pdf.Ln(4)

	// ── Balance ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(45, 8, "Saldo", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-45, 8, fmt.Sprintf("$ %s  (%s)", cliente.Saldo.StringFixed(2), estadoSaldo), "T", 1, "R", false, 0, "")

	if cliente.PuntosHabilitados {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(45, 7, "Puntos acumulados", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW-45, 7, fmt.Sprintf("%d", cliente.PuntosAcumulados), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Authorized persons ───────────────────────────────────────────────────
	if len(cliente.Personas) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 7, "Personas autorizadas", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range cliente.Personas {
			pdf.CellFormat(contentW, 6, "- "+p.Nombre, "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
