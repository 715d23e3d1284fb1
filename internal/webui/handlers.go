package webui

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tgfriperie/xmlsheets/internal/exporter"
	"github.com/tgfriperie/xmlsheets/internal/nfe"
)

// itemView is one preview table row. Monetary values arrive already
// formatted; the raw numbers only ever reach the exporter.
type itemView struct {
	Code      string
	Name      string
	Quantity  string
	UnitValue string
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{})
}

// handleUpload runs one extraction cycle: read the uploaded bytes, extract,
// park the records for the download click and render the preview. Any
// failure (or an invoice without items) renders the form again with a
// single error notice and no export offer.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Nenhum arquivo XML foi enviado.")
		return
	}

	maxBytes := s.cfg.Server.MaxUploadMB << 20
	if file.Size > maxBytes {
		s.renderError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("O arquivo excede o limite de %d MB.", s.cfg.Server.MaxUploadMB))
		return
	}

	src, err := file.Open()
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Não foi possível ler o arquivo enviado.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxBytes))
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Não foi possível ler o arquivo enviado.")
		return
	}

	records, err := nfe.Extract(data)
	if err != nil {
		s.renderError(c, http.StatusUnprocessableEntity,
			fmt.Sprintf("Ocorreu um erro ao processar o arquivo XML: %v", err))
		return
	}
	if len(records) == 0 {
		s.renderError(c, http.StatusUnprocessableEntity,
			"Nenhum item foi encontrado na nota fiscal.")
		return
	}

	token := s.store.put(records)

	items := make([]itemView, len(records))
	for i, rec := range records {
		items[i] = itemView{
			Code:      rec.ProductCode,
			Name:      rec.ProductName,
			Quantity:  strconv.FormatFloat(rec.Quantity, 'f', -1, 64),
			UnitValue: FormatBRL(rec.UnitValue),
		}
	}

	// All records share the invoice- and buyer-level fields; the first one
	// stands in for the whole document.
	first := records[0]
	c.HTML(http.StatusOK, "preview", gin.H{
		"NFNumber":    first.NFNumber,
		"IssuedAt":    first.IssuedAt,
		"BuyerName":   first.BuyerName,
		"Document":    first.BuyerDocument,
		"Address":     first.BuyerAddress,
		"Phone":       first.BuyerPhone,
		"Email":       first.BuyerEmail,
		"Total":       FormatBRL(first.TotalInvoice),
		"Items":       items,
		"DownloadURL": fmt.Sprintf("/nfe/%s/planilha", token),
	})
}

// handleDownload serializes the stored record set and serves it as an XLSX
// attachment. The session is consumed: a second click needs a new upload.
func (s *Server) handleDownload(c *gin.Context) {
	records, ok := s.store.take(c.Param("token"))
	if !ok {
		c.String(http.StatusNotFound, "Sessão expirada. Envie o arquivo novamente.")
		return
	}

	blob, err := exporter.ToSpreadsheet(records)
	if err != nil {
		c.String(http.StatusInternalServerError, "Não foi possível gerar a planilha: %v", err)
		return
	}

	name := exporter.Filename(records[0].NFNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, exporter.ContentType, blob)
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "index", gin.H{"Error": msg})
}
