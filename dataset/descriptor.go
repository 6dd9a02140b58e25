// Package dataset computes descriptive meta-features of a tabular dataset:
// dimensional statistics, categorical/numerical composition, correlation
// summaries between features and a designated target, class-balance
// statistics, and categorical-cardinality statistics.
//
// The entry point is Descriptor, which wraps a gota DataFrame, resolves its
// structure (dependent column, prediction type, categorical columns), derives
// an encoded copy for correlation analysis, and exposes one accessor per
// meta-feature. Accessors that do not apply to the resolved prediction type
// return NaN rather than an error.
package dataset

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/metafeat/pkg/errors"
	"github.com/YuminosukeSato/metafeat/pkg/log"
	"github.com/YuminosukeSato/metafeat/preprocessing"
)

// PredictionType identifies the kind of supervised problem a dataset poses.
type PredictionType string

const (
	// Regression indicates a numeric dependent column.
	Regression PredictionType = "regression"
	// Classification indicates a non-numeric dependent column.
	Classification PredictionType = "classification"
)

// String returns the prediction type name.
func (p PredictionType) String() string {
	return string(p)
}

// Descriptor wraps a tabular dataset and exposes its meta-features.
//
// All structural resolution and categorical encoding happen once at
// construction; the wrapped dataframe is treated as immutable afterwards.
// The three derived statistic maps (correlations, class probabilities,
// symbol counts) are memoized per instance on first access. Memoization is
// not synchronized: a Descriptor must not be shared across goroutines
// without external locking.
type Descriptor struct {
	df      dataframe.DataFrame
	encoded dataframe.DataFrame

	dependentCol    string
	independentCols []string
	predictionType  PredictionType
	categoricalCols []string
	strict          bool

	colTypes map[string]series.Type

	corrWithDependent  map[string]float64
	classProbabilities map[string]float64
	symbolCounts       map[string]int
}

type options struct {
	dependentCol    string
	predictionType  PredictionType
	categoricalCols []string
	strict          bool
}

// Option configures descriptor construction.
type Option func(*options)

// WithDependentCol designates the target column by name. When omitted the
// last column in declared order is used. The name must exist in the dataset.
func WithDependentCol(name string) Option {
	return func(o *options) { o.dependentCol = name }
}

// WithPredictionType overrides prediction-type inference. In lenient mode
// the override is accepted unconditionally; in strict mode it must agree
// with the dependent column's dtype.
func WithPredictionType(t PredictionType) Option {
	return func(o *options) { o.predictionType = t }
}

// WithCategoricalCols designates the nominal categorical columns explicitly.
// When omitted, every non-numeric column other than the dependent column is
// treated as categorical.
func WithCategoricalCols(names []string) Option {
	return func(o *options) { o.categoricalCols = names }
}

// WithStrict enables construction-time validation of explicit inputs:
// unknown categorical column names and a prediction type inconsistent with
// the dependent column's dtype become errors instead of warnings.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// New resolves a dataset's structure and returns its descriptor.
//
// Resolution order: dependent column, prediction type, categorical columns,
// then the eager categorical encoding used for correlation analysis.
func New(df dataframe.DataFrame, opts ...Option) (*Descriptor, error) {
	if err := df.Error(); err != nil {
		return nil, errors.Wrap(err, "dataset.New: invalid dataframe")
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New")
	}

	var opt options
	for _, o := range opts {
		o(&opt)
	}

	d := &Descriptor{
		df:     df,
		strict: opt.strict,
	}

	names := df.Names()
	types := df.Types()
	d.colTypes = make(map[string]series.Type, len(names))
	for i, name := range names {
		d.colTypes[name] = types[i]
	}

	if err := d.resolveDependentCol(opt.dependentCol); err != nil {
		return nil, err
	}
	if err := d.resolveCategoricalCols(opt.categoricalCols); err != nil {
		return nil, err
	}
	if err := d.resolvePredictionType(opt.predictionType); err != nil {
		return nil, err
	}

	d.independentCols = make([]string, 0, len(names)-1)
	for _, name := range names {
		if name != d.dependentCol {
			d.independentCols = append(d.independentCols, name)
		}
	}

	encoded, err := d.encodeCategorical()
	if err != nil {
		return nil, err
	}
	d.encoded = encoded

	log.GetLogger().Debug("descriptor constructed",
		log.ComponentKey, "dataset",
		log.OperationKey, "describe",
		log.RowsKey, d.df.Nrow(),
		log.ColumnsKey, d.df.Ncol(),
		log.DependentColKey, d.dependentCol,
		log.PredictionTypeKey, d.predictionType.String(),
		log.CategoricalColsKey, len(d.categoricalCols),
		log.EncodedColumnsKey, d.encoded.Ncol(),
	)

	return d, nil
}

// resolveDependentCol defaults to the last column in declared order.
func (d *Descriptor) resolveDependentCol(explicit string) error {
	names := d.df.Names()
	if explicit == "" {
		d.dependentCol = names[len(names)-1]
		return nil
	}
	if _, ok := d.colTypes[explicit]; !ok {
		return errors.NewColumnNotFoundError("dataset.New", explicit)
	}
	d.dependentCol = explicit
	return nil
}

// resolvePredictionType infers from the dependent column's dtype unless an
// explicit type is supplied. Explicit types win unconditionally in lenient
// mode; strict mode rejects unknown values and dtype mismatches.
func (d *Descriptor) resolvePredictionType(explicit PredictionType) error {
	inferred := Classification
	if isNumericType(d.colTypes[d.dependentCol]) {
		inferred = Regression
	}

	if explicit == "" {
		d.predictionType = inferred
		return nil
	}

	if d.strict {
		if explicit != Regression && explicit != Classification {
			return errors.NewValidationError("prediction_type", "must be 'regression' or 'classification'", string(explicit))
		}
		if explicit != inferred {
			return errors.NewValidationError("prediction_type", "inconsistent with dependent column dtype", string(explicit))
		}
	} else if explicit != inferred {
		errors.Warn(errors.NewPredictionTypeMismatchWarning(string(explicit), string(inferred), d.dependentCol))
	}

	d.predictionType = explicit
	return nil
}

// resolveCategoricalCols infers all non-numeric columns excluding the
// dependent column, sorted by name so encoding order is deterministic.
// Explicit lists are used verbatim; unknown names fail in strict mode and
// warn in lenient mode.
func (d *Descriptor) resolveCategoricalCols(explicit []string) error {
	if explicit == nil {
		var cats []string
		for _, name := range d.df.Names() {
			if name == d.dependentCol {
				continue
			}
			if !isNumericType(d.colTypes[name]) {
				cats = append(cats, name)
			}
		}
		sort.Strings(cats)
		d.categoricalCols = cats
		return nil
	}

	for _, name := range explicit {
		if _, ok := d.colTypes[name]; ok {
			continue
		}
		if d.strict {
			return errors.NewColumnNotFoundError("dataset.New", name)
		}
		errors.Warn(errors.NewUnknownColumnWarning(name, "categorical columns"))
	}
	d.categoricalCols = append([]string(nil), explicit...)
	return nil
}

// encodeCategorical builds the encoded copy used for correlation analysis.
// Categorical columns with at most two distinct non-missing values are
// label-encoded in place; columns with more are replaced by one indicator
// column per distinct value, appended after the surviving columns.
func (d *Descriptor) encodeCategorical() (dataframe.DataFrame, error) {
	cols := make([]series.Series, 0, d.df.Ncol())
	for _, name := range d.df.Names() {
		cols = append(cols, d.df.Col(name))
	}

	var dummies []series.Series
	for _, name := range d.categoricalCols {
		idx := -1
		for i := range cols {
			if cols[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			// unknown names were already warned about during resolution
			continue
		}

		s := cols[idx]
		if len(distinctNonMissing(s)) <= 2 {
			encoded, err := preprocessing.NewLabelEncoder().FitTransform(s)
			if err != nil {
				return dataframe.DataFrame{}, errors.Wrapf(err, "dataset.New: encoding column '%s'", name)
			}
			cols[idx] = encoded
			continue
		}

		indicators, err := preprocessing.NewOneHotEncoder().FitTransform(s)
		if err != nil {
			return dataframe.DataFrame{}, errors.Wrapf(err, "dataset.New: encoding column '%s'", name)
		}
		cols = append(cols[:idx], cols[idx+1:]...)
		dummies = append(dummies, indicators...)
	}

	encoded := dataframe.New(append(cols, dummies...)...)
	if err := encoded.Error(); err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "dataset.New: building encoded dataframe")
	}
	return encoded, nil
}

// DependentCol returns the resolved target column name.
func (d *Descriptor) DependentCol() string {
	return d.dependentCol
}

// IndependentCols returns the names of all non-target columns.
func (d *Descriptor) IndependentCols() []string {
	out := make([]string, len(d.independentCols))
	copy(out, d.independentCols)
	return out
}

// PredictionType returns the resolved prediction type.
func (d *Descriptor) PredictionType() PredictionType {
	return d.predictionType
}

// CategoricalCols returns the resolved categorical column names.
func (d *Descriptor) CategoricalCols() []string {
	out := make([]string, len(d.categoricalCols))
	copy(out, d.categoricalCols)
	return out
}

// Encoded returns the dataset copy with categorical columns encoded.
func (d *Descriptor) Encoded() dataframe.DataFrame {
	return d.encoded
}

// isNumericType reports whether a gota dtype holds numeric values.
func isNumericType(t series.Type) bool {
	return t == series.Float || t == series.Int
}

// hasColumn reports whether the wrapped dataset has a column by that name.
func (d *Descriptor) hasColumn(name string) bool {
	_, ok := d.colTypes[name]
	return ok
}

// distinctNonMissing returns the distinct non-missing values of a column in
// first-appearance order.
func distinctNonMissing(s series.Series) []string {
	seen := make(map[string]struct{})
	records := s.Records()
	var out []string
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			continue
		}
		if _, ok := seen[records[i]]; ok {
			continue
		}
		seen[records[i]] = struct{}{}
		out = append(out, records[i])
	}
	return out
}
