// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// pandasとscikit-learnの警告・例外システムにインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("metafeat-Warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、UnknownColumnWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。
// 警告はエラーではなく、処理は継続されます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	データセット記述用の警告型
//
// ===========================================================================

// UnknownColumnWarning は指定されたカラム名がデータセットに存在しない場合に発生する警告です。
// 寛容モードでは該当カラムをスキップして処理を継続します。
type UnknownColumnWarning struct {
	Column  string
	Context string
}

func (w *UnknownColumnWarning) Error() string {
	return fmt.Sprintf("column '%s' does not exist in the dataset and will be skipped (%s)", w.Column, w.Context)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnknownColumnWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("context", w.Context).
		Str("type", "UnknownColumnWarning")
}

// NewUnknownColumnWarning は新しいUnknownColumnWarningを作成します。
func NewUnknownColumnWarning(column, context string) *UnknownColumnWarning {
	return &UnknownColumnWarning{Column: column, Context: context}
}

// PredictionTypeMismatchWarning は明示的に指定された予測タイプが
// 従属カラムの型から推論されるタイプと一致しない場合に発生する警告です。
type PredictionTypeMismatchWarning struct {
	Supplied     string
	Inferred     string
	DependentCol string
}

func (w *PredictionTypeMismatchWarning) Error() string {
	return fmt.Sprintf("supplied prediction type '%s' does not match type '%s' inferred from dependent column '%s'",
		w.Supplied, w.Inferred, w.DependentCol)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *PredictionTypeMismatchWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("supplied", w.Supplied).
		Str("inferred", w.Inferred).
		Str("dependent_col", w.DependentCol).
		Str("type", "PredictionTypeMismatchWarning")
}

// NewPredictionTypeMismatchWarning は新しいPredictionTypeMismatchWarningを作成します。
func NewPredictionTypeMismatchWarning(supplied, inferred, dependentCol string) *PredictionTypeMismatchWarning {
	return &PredictionTypeMismatchWarning{Supplied: supplied, Inferred: inferred, DependentCol: dependentCol}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ColumnNotFoundError は明示的に指定されたカラム名がデータセットに存在しない場合のエラーです。
type ColumnNotFoundError struct {
	Op     string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("metafeat: %s: column '%s' does not exist in the dataset", e.Op, e.Column)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError は新しいColumnNotFoundErrorを作成し、スタックトレースを付与します。
func NewColumnNotFoundError(op, column string) error {
	err := &ColumnNotFoundError{Op: op, Column: column}
	return errors.WithStack(err)
}

// NotFittedError はエンコーダが未学習の状態で `Transform` を呼び出した場合のエラーです。
type NotFittedError struct {
	TransformerName string
	Method          string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("metafeat: %s: this transformer is not fitted yet. Call Fit() before using %s()", e.TransformerName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transformer_name", e.TransformerName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(transformerName, method string) error {
	err := &NotFittedError{TransformerName: transformerName, Method: method}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// 厳格モードでの構築時検証の失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("metafeat: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、空のデータフレームを渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("metafeat: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
