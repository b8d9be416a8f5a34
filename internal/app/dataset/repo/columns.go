package repo

// Canonical field names resolved from input headers.
const (
	fieldOrderID     = "order_id"
	fieldProductID   = "product_id"
	fieldProductName = "product_name"
	fieldCategory    = "category"
	fieldQuantity    = "quantity"
	fieldPrice       = "price"
	fieldOrderDate   = "order_date"
	fieldCashier     = "cashier"

	fieldID          = "id"
	fieldName        = "name"
	fieldCostPerUnit = "cost_per_unit"
	fieldWarehouse   = "warehouse_stock"
	fieldDisplay     = "display_stock"

	fieldReason     = "reason"
	fieldWasteDate  = "waste_date"
	fieldCostImpact = "cost_impact"
)

// Accepted header names per field. The first entry is the documented column name;
// the rest are names used by the upstream generator and older exports.
var saleColumns = map[string][]string{
	fieldOrderID:     {"order_id"},
	fieldProductID:   {"product_id", "product_firebase_id"},
	fieldProductName: {"product_name"},
	fieldCategory:    {"category"},
	fieldQuantity:    {"quantity"},
	fieldPrice:       {"price", "unit_price"},
	fieldOrderDate:   {"order_date", "order_timestamp"},
	fieldCashier:     {"cashier_username", "cashier_id"},
}

var saleRequired = []string{
	fieldOrderID, fieldProductID, fieldProductName, fieldCategory,
	fieldQuantity, fieldPrice, fieldOrderDate, fieldCashier,
}

var productColumns = map[string][]string{
	fieldID:          {"id", "product_id"},
	fieldName:        {"name", "product_name"},
	fieldCategory:    {"category"},
	fieldPrice:       {"price"},
	fieldCostPerUnit: {"cost_per_unit"},
	fieldQuantity:    {"quantity", "quantity_on_hand"},
	fieldWarehouse:   {"inventory_a", "warehouse_stock"},
	fieldDisplay:     {"inventory_b", "display_stock"},
}

var productRequired = []string{
	fieldID, fieldName, fieldCategory, fieldPrice, fieldCostPerUnit,
	fieldQuantity, fieldWarehouse, fieldDisplay,
}

var wasteColumns = map[string][]string{
	fieldProductID:   {"product_firebase_id", "product_id"},
	fieldProductName: {"product_name"},
	fieldCategory:    {"category"},
	fieldQuantity:    {"quantity"},
	fieldReason:      {"reason"},
	fieldWasteDate:   {"waste_date", "waste_timestamp"},
	fieldCostImpact:  {"cost_impact"},
}

var wasteRequired = []string{
	fieldProductID, fieldProductName, fieldCategory, fieldQuantity,
	fieldReason, fieldWasteDate, fieldCostImpact,
}
