package tabular

// Nombres de tabla del almacén de registros.
const (
	TableItems           = "Items"
	TableTransactions    = "Transactions"
	TablePhysicalCounts  = "PhysicalCounts"
	TableDiffLogs        = "DiffLogs"
	TableSupplierReports = "SupplierReports"
	TableStockLedger     = "StockLedger"
	TableUsers           = "Users"
)

// Encabezados por tabla. El orden aquí solo fija el layout al crear una tabla
// nueva; la lectura siempre resuelve columnas por nombre.
var Schemas = map[string][]string{
	TableItems: {
		"code", "name", "category", "unit", "new_flag", "initial_group", "initial_qty", "created_at",
	},
	TableTransactions: {
		"id", "item_code", "item_name", "direction", "quantity", "reason",
		"actor_id", "actor_name", "area", "date", "status",
		"approved_by", "approved_at", "return_comment", "created_at", "updated_at",
	},
	TablePhysicalCounts: {
		"id", "date", "item_code", "expected_qty", "actual_qty", "difference",
		"actor", "location", "status", "created_at",
	},
	TableDiffLogs: {
		"id", "physical_count_id", "item_code", "expected_qty", "actual_qty",
		"diff", "reason", "status", "created_at",
	},
	TableSupplierReports: {
		"id", "report_month", "item_code", "item_name", "discrepancy", "reason", "created_at",
	},
	TableStockLedger: {
		"item_code", "item_name", "opening_qty", "in_qty", "out_qty", "closing_qty", "synced_at",
	},
	TableUsers: {
		"id", "email", "password_hash", "name", "role", "area", "status", "created_at", "updated_at",
	},
}
