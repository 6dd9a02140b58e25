package preprocessing

import (
	"reflect"
	"testing"

	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/metafeat/pkg/errors"
)

func TestLabelEncoderFit(t *testing.T) {
	tests := []struct {
		name        string
		values      []string
		wantClasses []string
		wantErr     bool
	}{
		{
			name:        "binary column",
			values:      []string{"yes", "no", "yes", "no"},
			wantClasses: []string{"no", "yes"},
			wantErr:     false,
		},
		{
			name:        "classes sorted lexically",
			values:      []string{"c", "a", "b", "a"},
			wantClasses: []string{"a", "b", "c"},
			wantErr:     false,
		},
		{
			name:        "missing values excluded from classes",
			values:      []string{"x", "NaN", "y", "NaN"},
			wantClasses: []string{"x", "y"},
			wantErr:     false,
		},
		{
			name:    "empty series",
			values:  []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			le := NewLabelEncoder()
			err := le.Fit(series.New(tt.values, series.String, "col"))

			if (err != nil) != tt.wantErr {
				t.Errorf("Fit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if got := le.Classes(); !reflect.DeepEqual(got, tt.wantClasses) {
					t.Errorf("Classes() = %v, want %v", got, tt.wantClasses)
				}
			}
		})
	}
}

func TestLabelEncoderTransform(t *testing.T) {
	le := NewLabelEncoder()
	s := series.New([]string{"yes", "no", "NaN", "yes"}, series.String, "label")

	encoded, err := le.FitTransform(s)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if encoded.Name != "label" {
		t.Errorf("encoded column name = %v, want label", encoded.Name)
	}
	if encoded.Type() != series.Int {
		t.Errorf("encoded column type = %v, want int", encoded.Type())
	}

	// no: 0, yes: 1 in sorted order; NaN stays missing
	want := []string{"1", "0", "NaN", "1"}
	if got := encoded.Records(); !reflect.DeepEqual(got, want) {
		t.Errorf("Records() = %v, want %v", got, want)
	}
	if !encoded.Elem(2).IsNA() {
		t.Error("missing input should encode to a missing element")
	}
}

func TestLabelEncoderTransformUnseenValue(t *testing.T) {
	le := NewLabelEncoder()
	if err := le.Fit(series.New([]string{"a", "b"}, series.String, "col")); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	_, err := le.Transform(series.New([]string{"a", "c"}, series.String, "col"))
	if err == nil {
		t.Fatal("Transform() with unseen value should fail")
	}

	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("error should be castable to *ValueError, got %v", err)
	}
}

func TestLabelEncoderNotFitted(t *testing.T) {
	le := NewLabelEncoder()
	_, err := le.Transform(series.New([]string{"a"}, series.String, "col"))
	if err == nil {
		t.Fatal("Transform() before Fit() should fail")
	}

	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error should be castable to *NotFittedError, got %v", err)
	}
}

func TestOneHotEncoderTransform(t *testing.T) {
	ohe := NewOneHotEncoder()
	s := series.New([]string{"red", "blue", "red", "green"}, series.String, "color")

	indicators, err := ohe.FitTransform(s)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if len(indicators) != 3 {
		t.Fatalf("got %d indicator columns, want 3", len(indicators))
	}

	wantNames := []string{"color_blue", "color_green", "color_red"}
	if got := ohe.FeatureNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("FeatureNames() = %v, want %v", got, wantNames)
	}

	wantColumns := map[string][]string{
		"color_blue":  {"0", "1", "0", "0"},
		"color_green": {"0", "0", "0", "1"},
		"color_red":   {"1", "0", "1", "0"},
	}
	for _, ind := range indicators {
		if ind.Type() != series.Int {
			t.Errorf("indicator %s type = %v, want int", ind.Name, ind.Type())
		}
		if got := ind.Records(); !reflect.DeepEqual(got, wantColumns[ind.Name]) {
			t.Errorf("indicator %s = %v, want %v", ind.Name, got, wantColumns[ind.Name])
		}
	}

	// each row sums to exactly one indicator
	for row := 0; row < s.Len(); row++ {
		sum := 0.0
		for _, ind := range indicators {
			sum += ind.Float()[row]
		}
		if sum != 1.0 {
			t.Errorf("row %d indicator sum = %v, want 1", row, sum)
		}
	}
}

func TestOneHotEncoderMissingRow(t *testing.T) {
	ohe := NewOneHotEncoder()
	s := series.New([]string{"a", "NaN", "b", "c"}, series.String, "cat")

	indicators, err := ohe.FitTransform(s)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// the missing row is zero in every indicator
	for _, ind := range indicators {
		if ind.Float()[1] != 0.0 {
			t.Errorf("indicator %s at missing row = %v, want 0", ind.Name, ind.Float()[1])
		}
	}
}

func TestOneHotEncoderNotFitted(t *testing.T) {
	ohe := NewOneHotEncoder()
	_, err := ohe.Transform(series.New([]string{"a"}, series.String, "col"))
	if err == nil {
		t.Fatal("Transform() before Fit() should fail")
	}

	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("error should be castable to *NotFittedError, got %v", err)
	}
}
