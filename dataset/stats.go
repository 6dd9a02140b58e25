package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/metafeat/pkg/errors"
)

// NRows returns the number of rows in the dataset.
func (d *Descriptor) NRows() int {
	return d.df.Nrow()
}

// NColumns returns the number of columns, including the dependent column.
func (d *Descriptor) NColumns() int {
	return d.df.Ncol()
}

// RatioRowCol returns rows divided by columns, dependent column included.
func (d *Descriptor) RatioRowCol() float64 {
	return float64(d.df.Nrow()) / float64(d.df.Ncol())
}

// NCategorical returns the number of categorical columns, excluding the
// dependent column.
func (d *Descriptor) NCategorical() int {
	return len(d.categoricalCols)
}

// NNumerical returns the number of numerical columns. The dependent column
// is always excluded from the tally, so for regression datasets the count
// is one lower than the true number of numeric columns.
func (d *Descriptor) NNumerical() int {
	return d.NColumns() - d.NCategorical() - 1
}

// NClasses returns the number of distinct values in the dependent column.
// Only applicable for classification problems; returns NaN otherwise.
func (d *Descriptor) NClasses() float64 {
	if d.predictionType != Classification {
		return math.NaN()
	}
	return float64(len(distinctNonMissing(d.df.Col(d.dependentCol))))
}

// ---------------------------------------------------------------------------
// Correlation related

// corrMap memoizes the Pearson correlation of every numeric column of the
// encoded dataset with the dependent column, keyed by column name.
func (d *Descriptor) corrMap() map[string]float64 {
	if d.corrWithDependent != nil {
		return d.corrWithDependent
	}

	dep := d.encoded.Col(d.dependentCol).Float()
	types := d.encoded.Types()
	m := make(map[string]float64)
	for i, name := range d.encoded.Names() {
		if name == d.dependentCol || !isNumericType(types[i]) {
			continue
		}
		m[name] = pearson(dep, d.encoded.Col(name).Float())
	}

	d.corrWithDependent = m
	return m
}

// absCorrValues returns the absolute values of the memoized correlations.
func (d *Descriptor) absCorrValues() []float64 {
	m := d.corrMap()
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		vals = append(vals, math.Abs(v))
	}
	return vals
}

// CorrWithDependentAbsMax returns the maximum absolute Pearson correlation
// with the dependent column. Returns NaN for classification problems. Uses
// the encoded dataset, i.e. the copy with categorical columns encoded.
func (d *Descriptor) CorrWithDependentAbsMax() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanMax(d.absCorrValues())
}

// CorrWithDependentAbsMin returns the minimum absolute Pearson correlation
// with the dependent column. Returns NaN for classification problems.
func (d *Descriptor) CorrWithDependentAbsMin() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanMin(d.absCorrValues())
}

// CorrWithDependentAbsMean returns the mean absolute Pearson correlation
// with the dependent column. Returns NaN for classification problems.
func (d *Descriptor) CorrWithDependentAbsMean() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanMean(d.absCorrValues())
}

// CorrWithDependentAbsMedian returns the median absolute Pearson correlation
// with the dependent column. Returns NaN for classification problems.
func (d *Descriptor) CorrWithDependentAbsMedian() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanPercentile(d.absCorrValues(), 50)
}

// CorrWithDependentAbsStd returns the sample standard deviation of the
// absolute Pearson correlations with the dependent column. Returns NaN for
// classification problems.
func (d *Descriptor) CorrWithDependentAbsStd() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanStd(d.absCorrValues())
}

// CorrWithDependentAbsP25 returns the 25th percentile of the absolute
// Pearson correlations with the dependent column. Returns NaN for
// classification problems.
func (d *Descriptor) CorrWithDependentAbsP25() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanPercentile(d.absCorrValues(), 25)
}

// CorrWithDependentAbsP75 returns the 75th percentile of the absolute
// Pearson correlations with the dependent column. Returns NaN for
// classification problems.
func (d *Descriptor) CorrWithDependentAbsP75() float64 {
	if d.predictionType == Classification {
		return math.NaN()
	}
	return nanPercentile(d.absCorrValues(), 75)
}

// ---------------------------------------------------------------------------
// Class probability related

// classProbs memoizes the empirical frequency of every distinct non-missing
// value in the dependent column, with the full row count as divisor.
func (d *Descriptor) classProbs() map[string]float64 {
	if d.classProbabilities != nil {
		return d.classProbabilities
	}

	dep := d.df.Col(d.dependentCol)
	records := dep.Records()
	counts := make(map[string]int)
	for i := 0; i < dep.Len(); i++ {
		if dep.Elem(i).IsNA() {
			continue
		}
		counts[records[i]]++
	}

	m := make(map[string]float64, len(counts))
	total := float64(d.NRows())
	for class, count := range counts {
		m[class] = float64(count) / total
	}

	d.classProbabilities = m
	return m
}

func (d *Descriptor) classProbValues() []float64 {
	m := d.classProbs()
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// ClassProbMin returns the smallest empirical class frequency of the
// dependent column. Returns NaN for regression problems.
func (d *Descriptor) ClassProbMin() float64 {
	if d.predictionType == Regression {
		return math.NaN()
	}
	return nanMin(d.classProbValues())
}

// ClassProbMax returns the largest empirical class frequency of the
// dependent column. Returns NaN for regression problems.
func (d *Descriptor) ClassProbMax() float64 {
	if d.predictionType == Regression {
		return math.NaN()
	}
	return nanMax(d.classProbValues())
}

// ClassProbMean returns the mean empirical class frequency of the dependent
// column. Returns NaN for regression problems.
func (d *Descriptor) ClassProbMean() float64 {
	if d.predictionType == Regression {
		return math.NaN()
	}
	return nanMean(d.classProbValues())
}

// ClassProbMedian returns the median empirical class frequency of the
// dependent column. Returns NaN for regression problems.
func (d *Descriptor) ClassProbMedian() float64 {
	if d.predictionType == Regression {
		return math.NaN()
	}
	return nanPercentile(d.classProbValues(), 50)
}

// ClassProbStd returns the sample standard deviation of the empirical class
// frequencies of the dependent column. Returns NaN for regression problems.
func (d *Descriptor) ClassProbStd() float64 {
	if d.predictionType == Regression {
		return math.NaN()
	}
	return nanStd(d.classProbValues())
}

// ---------------------------------------------------------------------------
// Symbols related - all the categorical columns

// symbols memoizes the count of distinct non-missing values per categorical
// column. Columns absent from the dataset are skipped with a warning.
func (d *Descriptor) symbols() map[string]int {
	if d.symbolCounts != nil {
		return d.symbolCounts
	}

	m := make(map[string]int, len(d.categoricalCols))
	for _, name := range d.categoricalCols {
		if !d.hasColumn(name) {
			errors.Warn(errors.NewUnknownColumnWarning(name, "symbol counts"))
			continue
		}
		m[name] = len(distinctNonMissing(d.df.Col(name)))
	}

	d.symbolCounts = m
	return m
}

func (d *Descriptor) symbolValues() []float64 {
	m := d.symbols()
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		vals = append(vals, float64(v))
	}
	return vals
}

// SymbolsMean returns the average number of distinct values per categorical
// column. Returns NaN when there are no categorical columns.
func (d *Descriptor) SymbolsMean() float64 {
	return nanMean(d.symbolValues())
}

// SymbolsStd returns the sample standard deviation of the distinct-value
// counts per categorical column. Returns NaN when there are no categorical
// columns.
func (d *Descriptor) SymbolsStd() float64 {
	return nanStd(d.symbolValues())
}

// SymbolsMin returns the smallest distinct-value count among the categorical
// columns. Returns NaN when there are no categorical columns.
func (d *Descriptor) SymbolsMin() float64 {
	return nanMin(d.symbolValues())
}

// SymbolsMax returns the largest distinct-value count among the categorical
// columns. Returns NaN when there are no categorical columns.
func (d *Descriptor) SymbolsMax() float64 {
	return nanMax(d.symbolValues())
}

// SymbolsSum returns the total distinct-value count across the categorical
// columns. Returns NaN when there are no categorical columns.
func (d *Descriptor) SymbolsSum() float64 {
	vals := d.symbolValues()
	if len(vals) == 0 {
		return math.NaN()
	}
	return floats.Sum(vals)
}

// ---------------------------------------------------------------------------
// Bundled extraction

// Metafeatures evaluates every accessor once and returns the results keyed
// by conventional meta-feature names. Not-applicable entries carry NaN.
func (d *Descriptor) Metafeatures() map[string]float64 {
	return map[string]float64{
		"n_rows":                         float64(d.NRows()),
		"n_columns":                      float64(d.NColumns()),
		"ratio_rowcol":                   d.RatioRowCol(),
		"n_categorical":                  float64(d.NCategorical()),
		"n_numerical":                    float64(d.NNumerical()),
		"n_classes":                      d.NClasses(),
		"corr_with_dependent_abs_max":    d.CorrWithDependentAbsMax(),
		"corr_with_dependent_abs_min":    d.CorrWithDependentAbsMin(),
		"corr_with_dependent_abs_mean":   d.CorrWithDependentAbsMean(),
		"corr_with_dependent_abs_median": d.CorrWithDependentAbsMedian(),
		"corr_with_dependent_abs_std":    d.CorrWithDependentAbsStd(),
		"corr_with_dependent_abs_25p":    d.CorrWithDependentAbsP25(),
		"corr_with_dependent_abs_75p":    d.CorrWithDependentAbsP75(),
		"class_prob_min":                 d.ClassProbMin(),
		"class_prob_max":                 d.ClassProbMax(),
		"class_prob_mean":                d.ClassProbMean(),
		"class_prob_median":              d.ClassProbMedian(),
		"class_prob_std":                 d.ClassProbStd(),
		"symbols_mean":                   d.SymbolsMean(),
		"symbols_std":                    d.SymbolsStd(),
		"symbols_min":                    d.SymbolsMin(),
		"symbols_max":                    d.SymbolsMax(),
		"symbols_sum":                    d.SymbolsSum(),
	}
}

// ---------------------------------------------------------------------------
// NaN-aware reductions

// pearson computes the Pearson correlation between two columns, skipping
// rows where either side is missing. Fewer than two complete pairs yields
// NaN.
func pearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

func nanMax(xs []float64) float64 {
	v := dropNaN(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Max(v)
}

func nanMin(xs []float64) float64 {
	v := dropNaN(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Min(v)
}

func nanMean(xs []float64) float64 {
	v := dropNaN(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	return stat.Mean(v, nil)
}

// nanStd is the sample standard deviation (divisor n-1) of the non-NaN
// entries. A single entry yields NaN, matching the n-1 convention.
func nanStd(xs []float64) float64 {
	v := dropNaN(xs)
	if len(v) < 2 {
		return math.NaN()
	}
	return stat.StdDev(v, nil)
}

// nanPercentile interpolates the p-th percentile linearly on the fractional
// rank p/100*(n-1) of the sorted non-NaN entries.
func nanPercentile(xs []float64, p float64) float64 {
	v := dropNaN(xs)
	if len(v) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), v...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
