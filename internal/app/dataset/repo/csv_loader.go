package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/light-bringer/mldatasets/internal/app/dataset/contracts"
	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/pkg/csvio"
)

// Files names the three input files inside the input directory.
type Files struct {
	Sales    string
	Products string
	Waste    string
}

// DefaultFiles are the file names written by the upstream generator.
var DefaultFiles = Files{
	Sales:    "sales.csv",
	Products: "products.csv",
	Waste:    "waste_logs.csv",
}

// CSVLoader implements SnapshotLoader over a directory of CSV files.
type CSVLoader struct {
	dir   string
	files Files
}

// NewCSVLoader creates a new SnapshotLoader reading from dir.
func NewCSVLoader(dir string, files Files) contracts.SnapshotLoader {
	return &CSVLoader{
		dir:   dir,
		files: files,
	}
}

// Load reads products first so duplicate ids are reported before sales and waste are parsed.
func (l *CSVLoader) Load(ctx context.Context) (*contracts.Snapshot, error) {
	snapshot := &contracts.Snapshot{}

	products, err := l.loadTable(ctx, contracts.InputProducts, l.files.Products, productColumns, productRequired)
	if err != nil {
		return nil, err
	}
	snapshot.Catalog = l.parseProducts(products, snapshot)

	sales, err := l.loadTable(ctx, contracts.InputSales, l.files.Sales, saleColumns, saleRequired)
	if err != nil {
		return nil, err
	}
	snapshot.Sales = l.parseSales(sales, snapshot)

	waste, err := l.loadTable(ctx, contracts.InputWaste, l.files.Waste, wasteColumns, wasteRequired)
	if err != nil {
		return nil, err
	}
	snapshot.Waste = l.parseWaste(waste, snapshot)

	return snapshot, nil
}

type table struct {
	name string
	doc  *csvio.Document
	cols csvio.Columns
}

func (l *CSVLoader) loadTable(ctx context.Context, name, file string, aliases map[string][]string, required []string) (*table, error) {
	path := filepath.Join(l.dir, file)
	if err := ctx.Err(); err != nil {
		return nil, domain.NewLoadError(name, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewLoadError(name, path, domain.ErrFileNotFound)
		}
		return nil, domain.NewLoadError(name, path, err)
	}
	defer f.Close()

	doc, err := csvio.Read(f)
	if err != nil {
		if errors.Is(err, csvio.ErrNoHeader) {
			return nil, domain.NewLoadError(name, path, domain.ErrEmptyFile)
		}
		return nil, domain.NewLoadError(name, path, err)
	}

	cols, missing := csvio.ResolveColumns(doc.Header, aliases, required)
	if len(missing) > 0 {
		return nil, domain.NewLoadError(name, path, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", ")))
	}

	return &table{name: name, doc: doc, cols: cols}, nil
}

func (l *CSVLoader) parseProducts(t *table, snapshot *contracts.Snapshot) *domain.Catalog {
	catalog := domain.NewEmptyCatalog()
	l.collectParseWarnings(t, snapshot)

	for _, row := range t.doc.Rows {
		p, err := parseProduct(t.cols, row)
		if err == nil {
			err = catalog.Add(p)
		}
		if err != nil {
			warn(snapshot, t.name, row.Line, err)
		}
	}
	return catalog
}

func (l *CSVLoader) parseSales(t *table, snapshot *contracts.Snapshot) []domain.SaleRecord {
	l.collectParseWarnings(t, snapshot)

	sales := make([]domain.SaleRecord, 0, len(t.doc.Rows))
	for _, row := range t.doc.Rows {
		s, err := parseSale(t.cols, row)
		if err != nil {
			warn(snapshot, t.name, row.Line, err)
			continue
		}
		sales = append(sales, s)
	}
	return sales
}

func (l *CSVLoader) parseWaste(t *table, snapshot *contracts.Snapshot) []domain.WasteRecord {
	l.collectParseWarnings(t, snapshot)

	waste := make([]domain.WasteRecord, 0, len(t.doc.Rows))
	for _, row := range t.doc.Rows {
		w, err := parseWasteRecord(t.cols, row)
		if err != nil {
			warn(snapshot, t.name, row.Line, err)
			continue
		}
		waste = append(waste, w)
	}
	return waste
}

func (l *CSVLoader) collectParseWarnings(t *table, snapshot *contracts.Snapshot) {
	for _, w := range t.doc.Warnings {
		snapshot.Warnings = append(snapshot.Warnings, contracts.LoadWarning{Table: t.name, Row: w.Line, Message: w.Message})
	}
}

func warn(snapshot *contracts.Snapshot, table string, line int, err error) {
	snapshot.Warnings = append(snapshot.Warnings, contracts.LoadWarning{
		Table:   table,
		Row:     line,
		Message: err.Error(),
	})
}

func parseProduct(cols csvio.Columns, row csvio.Row) (domain.ProductRecord, error) {
	name := cols.Get(row, fieldName)
	price, err := domain.NewMoneyFromString(cols.Get(row, fieldPrice))
	if err != nil {
		return domain.ProductRecord{}, err
	}
	cost, err := parseOptionalMoney(cols.Get(row, fieldCostPerUnit))
	if err != nil {
		return domain.ProductRecord{}, err
	}
	onHand, err := parseInt(cols.Get(row, fieldQuantity))
	if err != nil {
		return domain.ProductRecord{}, err
	}
	warehouse, err := parseInt(cols.Get(row, fieldWarehouse))
	if err != nil {
		return domain.ProductRecord{}, err
	}
	display, err := parseInt(cols.Get(row, fieldDisplay))
	if err != nil {
		return domain.ProductRecord{}, err
	}

	return domain.NewProductRecord(
		cols.Get(row, fieldID),
		name,
		domain.ResolveCategory(cols.Get(row, fieldCategory), name),
		price,
		cost,
		onHand,
		warehouse,
		display,
	)
}

func parseSale(cols csvio.Columns, row csvio.Row) (domain.SaleRecord, error) {
	name := cols.Get(row, fieldProductName)
	quantity, err := parseInt(cols.Get(row, fieldQuantity))
	if err != nil {
		return domain.SaleRecord{}, err
	}
	price, err := domain.NewMoneyFromString(cols.Get(row, fieldPrice))
	if err != nil {
		return domain.SaleRecord{}, err
	}
	orderedAt, err := domain.ParseTimestamp(cols.Get(row, fieldOrderDate))
	if err != nil {
		return domain.SaleRecord{}, err
	}

	return domain.NewSaleRecord(
		cols.Get(row, fieldOrderID),
		cols.Get(row, fieldProductID),
		name,
		domain.ResolveCategory(cols.Get(row, fieldCategory), name),
		quantity,
		price,
		orderedAt,
		cols.Get(row, fieldCashier),
	)
}

func parseWasteRecord(cols csvio.Columns, row csvio.Row) (domain.WasteRecord, error) {
	name := cols.Get(row, fieldProductName)
	quantity, err := parseInt(cols.Get(row, fieldQuantity))
	if err != nil {
		return domain.WasteRecord{}, err
	}
	wastedAt, err := domain.ParseTimestamp(cols.Get(row, fieldWasteDate))
	if err != nil {
		return domain.WasteRecord{}, err
	}
	cost, err := parseOptionalMoney(cols.Get(row, fieldCostImpact))
	if err != nil {
		return domain.WasteRecord{}, err
	}

	return domain.NewWasteRecord(
		cols.Get(row, fieldProductID),
		name,
		domain.ResolveCategory(cols.Get(row, fieldCategory), name),
		quantity,
		domain.WasteReason(cols.Get(row, fieldReason)),
		wastedAt,
		cost,
	)
}

// parseInt accepts integral floats such as "5.0", which spreadsheet exports produce.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

func parseOptionalMoney(s string) (domain.Money, error) {
	if s == "" {
		return domain.ZeroMoney(), nil
	}
	return domain.NewMoneyFromString(s)
}
