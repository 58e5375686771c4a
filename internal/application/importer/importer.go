// Package importer loads assets from a CSV file. Each row walks the catalog
// chain and creates the asset; rows that fail are collected in the
// ImportResult and can be written back out as a skipped-rows report.
package importer

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	assetdto "art/internal/application/asset/dto"
	assetusecases "art/internal/application/asset/usecases"
	catalogusecases "art/internal/application/catalog/usecases"
	"art/internal/shared/db"
	"art/internal/shared/errors"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

const dateLayout = "2006-01-02"

type CatalogChain interface {
	EnsureChain(ctx context.Context, path catalogusecases.CatalogPath) (uint, error)
}

type AssetWriter interface {
	CreateAsset(ctx context.Context, cmd assetusecases.CreateAssetCommand) (*assetdto.AssetDTO, error)
	RecordStatus(ctx context.Context, cmd assetusecases.RecordStatusCommand) (*assetdto.StatusRecordDTO, error)
}

// Row is one CSV record after the header has been mapped onto it.
type Row struct {
	Category     string `json:"category" validate:"notblank"`
	SubCategory  string `json:"sub_category" validate:"notblank"`
	Type         string `json:"type" validate:"notblank"`
	Make         string `json:"make" validate:"notblank"`
	ModelNumber  string `json:"model_number" validate:"notblank"`
	AssetCode    string `json:"asset_code" validate:"required_without=SerialNumber"`
	SerialNumber string `json:"serial_number"`
	Notes        string `json:"notes"`
	PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Verified     string `json:"verified" validate:"omitempty,boolean"`
	Status       string `json:"status" validate:"omitempty,oneof=Available Lost Damaged"`
}

var requiredColumns = []string{"category", "sub_category", "type", "make", "model_number"}

// SkippedRow keeps the original record so the report can be fixed and re-imported.
type SkippedRow struct {
	Line   int
	Record []string
	Reason string
}

// ImportResult is owned by a single Import call.
type ImportResult struct {
	Header   []string
	Total    int
	Imported int
	Skipped  []SkippedRow
}

func (r *ImportResult) skip(line int, record []string, err error) {
	r.Skipped = append(r.Skipped, SkippedRow{
		Line:   line,
		Record: append([]string(nil), record...),
		Reason: reason(err),
	})
}

// WriteSkippedReport writes the skipped rows as CSV: the original header plus
// line and reason columns.
func (r *ImportResult) WriteSkippedReport(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append(append([]string(nil), r.Header...), "line", "reason")
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range r.Skipped {
		record := append(append([]string(nil), s.Record...), strconv.Itoa(s.Line), s.Reason)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type Importer struct {
	catalog CatalogChain
	assets  AssetWriter
	txMgr   *db.TransactionManager
	logger  logger.Interface
}

func NewImporter(catalog CatalogChain, assets AssetWriter, txMgr *db.TransactionManager, logger logger.Interface) *Importer {
	return &Importer{
		catalog: catalog,
		assets:  assets,
		txMgr:   txMgr,
		logger:  logger,
	}
}

// Import reads the whole file. A malformed header aborts the run; row level
// failures are recorded and the run continues.
func (im *Importer) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewValidationError("import file is empty")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Header: header}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		line++
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Total++
			result.skip(line, record, errors.NewValidationError("malformed csv record", err.Error()))
			continue
		}
		if isBlank(record) {
			continue
		}

		result.Total++
		if err := im.importRow(ctx, columns.row(record)); err != nil {
			im.logger.Warnw("import row skipped", "line", line, "error", err)
			result.skip(line, record, err)
			continue
		}
		result.Imported++
	}

	im.logger.Infow("asset import finished",
		"total", result.Total,
		"imported", result.Imported,
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func (im *Importer) importRow(ctx context.Context, row Row) error {
	if err := utils.ValidateStruct(row); err != nil {
		return err
	}

	cmd := assetusecases.CreateAssetCommand{
		AssetCode:    row.AssetCode,
		SerialNumber: row.SerialNumber,
		Notes:        row.Notes,
	}
	if row.PurchaseDate != "" {
		date, err := time.Parse(dateLayout, row.PurchaseDate)
		if err != nil {
			return errors.NewValidationError("purchase_date must match the date layout "+dateLayout, "purchase_date")
		}
		cmd.PurchaseDate = &date
	}
	if row.Verified != "" {
		cmd.Verified, _ = strconv.ParseBool(row.Verified)
	}

	return im.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		modelNumberID, err := im.catalog.EnsureChain(txCtx, catalogusecases.CatalogPath{
			Category:    row.Category,
			SubCategory: row.SubCategory,
			Type:        row.Type,
			Make:        row.Make,
			ModelNumber: row.ModelNumber,
		})
		if err != nil {
			return err
		}
		cmd.ModelNumberID = modelNumberID

		created, err := im.assets.CreateAsset(txCtx, cmd)
		if err != nil {
			return err
		}
		if row.Status == "" || row.Status == created.CurrentStatus {
			return nil
		}
		_, err = im.assets.RecordStatus(txCtx, assetusecases.RecordStatusCommand{
			AssetID: created.ID,
			Status:  row.Status,
		})
		return err
	})
}

type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		key := strings.TrimPrefix(name, "\ufeff")
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		columns[key] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if _, ok := columns["asset_code"]; !ok {
		if _, ok := columns["serial_number"]; !ok {
			missing = append(missing, "asset_code or serial_number")
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationError("import file is missing columns", strings.Join(missing, ", "))
	}
	return columns, nil
}

func (c columnIndex) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columnIndex) row(record []string) Row {
	return Row{
		Category:     c.get(record, "category"),
		SubCategory:  c.get(record, "sub_category"),
		Type:         c.get(record, "type"),
		Make:         c.get(record, "make"),
		ModelNumber:  c.get(record, "model_number"),
		AssetCode:    c.get(record, "asset_code"),
		SerialNumber: c.get(record, "serial_number"),
		Notes:        c.get(record, "notes"),
		PurchaseDate: c.get(record, "purchase_date"),
		Verified:     c.get(record, "verified"),
		Status:       c.get(record, "status"),
	}
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func reason(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Details != "" {
			return appErr.Message + ": " + appErr.Details
		}
		return appErr.Message
	}
	return err.Error()
}
