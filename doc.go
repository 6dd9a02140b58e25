// Package metafeat provides descriptive meta-features for tabular datasets,
// designed for meta-learning pipelines that characterize datasets to
// recommend models or algorithms.
//
// Metafeat wraps a gota DataFrame, infers its structure (dependent column,
// categorical columns, prediction type), encodes categorical columns for
// correlation analysis, and exposes a battery of scalar statistic accessors
// with a pandas/scikit-learn flavored API.
//
// # Features
//
//   - Dimensional statistics: row/column counts, ratios, composition
//   - Correlation summaries between features and a regression target
//   - Class-balance statistics for classification targets
//   - Categorical-cardinality ("symbol count") statistics
//   - scikit-learn-compatible label and one-hot encoders
//   - Structured errors and warnings with stack traces
//
// # Installation
//
// Install metafeat using go get:
//
//	go get github.com/YuminosukeSato/metafeat
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/go-gota/gota/dataframe"
//	    "github.com/YuminosukeSato/metafeat/dataset"
//	)
//
//	func main() {
//	    df := dataframe.LoadRecords([][]string{
//	        {"color", "size", "price"},
//	        {"red", "10", "1.5"},
//	        {"blue", "20", "2.5"},
//	        {"green", "15", "2.0"},
//	    })
//
//	    d, err := dataset.New(df)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(d.NRows(), d.NColumns(), d.RatioRowCol())
//	    fmt.Println(d.CorrWithDependentAbsMax())
//	}
//
// Every accessor returns one scalar. Accessors that do not apply to the
// resolved prediction type return NaN rather than an error, so absent
// statistics can be treated as data by downstream pipelines.
//
// # License
//
// Metafeat is released under the MIT License.
package metafeat
