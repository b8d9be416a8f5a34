package domain

import "strconv"

// Output table names.
const (
	TableSalesAnalysis          = "sales_analysis"
	TableWastePrediction        = "waste_prediction"
	TableInventoryForecast      = "inventory_forecast"
	TableProductRecommendations = "product_recommendations"
)

// SalesAggregateRow is one (date, product) bucket of the sales analysis table.
type SalesAggregateRow struct {
	ProductID        string
	ProductName      string
	Category         Category
	TotalQuantity    int
	TotalRevenue     Money
	TransactionCount int
	Calendar         CalendarFeatures
}

var SalesAggregateColumns = []string{
	"date", "product_id", "product_name", "category",
	"total_quantity", "total_revenue", "transaction_count",
	"weekday_name", "weekday_num", "month", "month_name", "year", "is_weekend",
}

func (r SalesAggregateRow) Record() []string {
	return []string{
		r.Calendar.Date, r.ProductID, r.ProductName, string(r.Category),
		strconv.Itoa(r.TotalQuantity), r.TotalRevenue.String(), strconv.Itoa(r.TransactionCount),
		r.Calendar.WeekdayName, strconv.Itoa(r.Calendar.WeekdayNum), strconv.Itoa(r.Calendar.Month),
		r.Calendar.MonthName, strconv.Itoa(r.Calendar.Year), strconv.FormatBool(r.Calendar.IsWeekend),
	}
}

// WasteFeatureRow is one waste event with joined catalog attributes.
// Joined fields are nil when the product is missing from the catalog.
type WasteFeatureRow struct {
	ProductID       string
	ProductName     string
	Category        Category
	Quantity        int
	CostImpact      Money
	Reason          WasteReason
	Calendar        CalendarFeatures
	Price           *Money
	ProductCategory *Category
	CostPerUnit     *Money
}

var WasteFeatureColumns = []string{
	"date", "product_id", "product_name", "category", "quantity", "cost_impact", "reason",
	"weekday_name", "weekday_num", "month", "year", "is_weekend",
	"price", "product_category", "cost_per_unit",
}

func (r WasteFeatureRow) Record() []string {
	return []string{
		r.Calendar.Date, r.ProductID, r.ProductName, string(r.Category),
		strconv.Itoa(r.Quantity), r.CostImpact.String(), string(r.Reason),
		r.Calendar.WeekdayName, strconv.Itoa(r.Calendar.WeekdayNum), strconv.Itoa(r.Calendar.Month),
		strconv.Itoa(r.Calendar.Year), strconv.FormatBool(r.Calendar.IsWeekend),
		optionalMoney(r.Price), optionalCategory(r.ProductCategory), optionalMoney(r.CostPerUnit),
	}
}

// Joined reports whether the catalog lookup succeeded.
func (r WasteFeatureRow) Joined() bool {
	return r.Price != nil
}

// InventoryForecastRow is the reorder forecast for one catalog product.
type InventoryForecastRow struct {
	ProductID         string
	ProductName       string
	Category          Category
	QuantityOnHand    int
	WarehouseStock    int
	DisplayStock      int
	Price             Money
	AvgDailySales     float64
	StdDailySales     float64
	MinDailySales     int
	MaxDailySales     int
	LeadTimeDays      int
	SafetyStock       int
	ReorderPoint      int
	DaysUntilStockout int
}

var InventoryForecastColumns = []string{
	"product_id", "product_name", "category", "quantity_on_hand", "warehouse_stock", "display_stock", "price",
	"avg_daily_sales", "std_daily_sales", "min_daily_sales", "max_daily_sales",
	"reorder_point", "safety_stock", "lead_time_days", "days_until_stockout",
}

func (r InventoryForecastRow) Record() []string {
	return []string{
		r.ProductID, r.ProductName, string(r.Category),
		strconv.Itoa(r.QuantityOnHand), strconv.Itoa(r.WarehouseStock), strconv.Itoa(r.DisplayStock), r.Price.String(),
		formatFloat(r.AvgDailySales), formatFloat(r.StdDailySales),
		strconv.Itoa(r.MinDailySales), strconv.Itoa(r.MaxDailySales),
		strconv.Itoa(r.ReorderPoint), strconv.Itoa(r.SafetyStock), strconv.Itoa(r.LeadTimeDays), strconv.Itoa(r.DaysUntilStockout),
	}
}

// CoPurchasePairRow is an unordered product pair with ProductAID < ProductBID.
type CoPurchasePairRow struct {
	ProductAID      string
	ProductAName    string
	ProductBID      string
	ProductBName    string
	CoPurchaseCount int
	ConfidenceScore float64
}

var CoPurchasePairColumns = []string{
	"product_a_id", "product_a_name", "product_b_id", "product_b_name", "co_purchase_count", "confidence_score",
}

func (r CoPurchasePairRow) Record() []string {
	return []string{
		r.ProductAID, r.ProductAName, r.ProductBID, r.ProductBName,
		strconv.Itoa(r.CoPurchaseCount), strconv.FormatFloat(r.ConfidenceScore, 'f', 2, 64),
	}
}

// formatFloat writes the shortest decimal that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalMoney(m *Money) string {
	if m == nil {
		return ""
	}
	return m.String()
}

func optionalCategory(c *Category) string {
	if c == nil {
		return ""
	}
	return string(*c)
}
