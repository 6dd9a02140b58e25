// Package log defines standard attribute keys for dataset description
// operations.
//
// Using these standard keys enables consistent log analysis, monitoring, and
// debugging of meta-feature extraction workflows. The keys follow a
// hierarchical naming convention (e.g., "data.rows", "ml.prediction_type") to
// enable structured log filtering.

package log

// Operation Context
// These attributes identify the component and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "preprocessing"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "describe", "encode", "fit", "transform"
	OperationKey = "ml.operation"

	// PredictionTypeKey indicates the resolved prediction type of a descriptor.
	// Values: "regression", "classification"
	PredictionTypeKey = "ml.prediction_type"
)

// Data Shape and Roles
// These attributes describe the structure of the dataset being described.
const (
	// RowsKey indicates the number of rows in the dataset.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of columns in the dataset,
	// including the dependent column.
	ColumnsKey = "data.columns"

	// DependentColKey names the resolved dependent (target) column.
	DependentColKey = "data.dependent"

	// CategoricalColsKey indicates the number of categorical columns.
	CategoricalColsKey = "data.categorical"

	// EncodedColumnsKey indicates the column count after categorical encoding.
	EncodedColumnsKey = "data.encoded_columns"

	// ColumnKey names a single column involved in an operation.
	ColumnKey = "data.column"
)
