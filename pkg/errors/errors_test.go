package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewColumnNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		column   string
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "dependent column",
			op:       "dataset.New",
			column:   "target",
			wantMsg:  "metafeat: dataset.New: column 'target' does not exist in the dataset",
			hasStack: true,
		},
		{
			name:     "categorical column",
			op:       "dataset.New",
			column:   "color",
			wantMsg:  "metafeat: dataset.New: column 'color' does not exist in the dataset",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewColumnNotFoundError(tt.op, tt.column)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ColumnNotFoundError型にキャスト可能か確認
			var colErr *ColumnNotFoundError
			if !As(err, &colErr) {
				t.Error("Error should be castable to *ColumnNotFoundError")
			}
			if colErr.Column != tt.column {
				t.Errorf("Column = %v, want %v", colErr.Column, tt.column)
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LabelEncoder", "Transform")

	wantMsg := "metafeat: LabelEncoder: this transformer is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != wantMsg {
		t.Errorf("Error() = %v, want %v", err.Error(), wantMsg)
	}

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("prediction_type", "inconsistent with dependent column dtype", "regression")

	wantMsg := "metafeat: validation failed for parameter 'prediction_type': inconsistent with dependent column dtype (got: regression)"
	if err.Error() != wantMsg {
		t.Errorf("Error() = %v, want %v", err.Error(), wantMsg)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("dataset.New", "empty dataset")

	wantMsg := "metafeat: dataset.New: empty dataset"
	if err.Error() != wantMsg {
		t.Errorf("Error() = %v, want %v", err.Error(), wantMsg)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	Warn(NewUnknownColumnWarning("colour", "categorical columns"))
	Warn(NewPredictionTypeMismatchWarning("regression", "classification", "label"))

	if len(captured) != 2 {
		t.Fatalf("captured %d warnings, want 2", len(captured))
	}

	var unknown *UnknownColumnWarning
	if !As(captured[0], &unknown) {
		t.Error("first warning should be castable to *UnknownColumnWarning")
	}
	if unknown.Column != "colour" {
		t.Errorf("Column = %v, want colour", unknown.Column)
	}

	var mismatch *PredictionTypeMismatchWarning
	if !As(captured[1], &mismatch) {
		t.Error("second warning should be castable to *PredictionTypeMismatchWarning")
	}
	if !strings.Contains(mismatch.Error(), "does not match") {
		t.Errorf("unexpected warning message: %v", mismatch.Error())
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewColumnNotFoundError("dataset.New", "y")
	wrapped := Wrap(base, "building descriptor")

	var colErr *ColumnNotFoundError
	if !As(wrapped, &colErr) {
		t.Error("wrapped error should still be castable to *ColumnNotFoundError")
	}
}
