package model

// EstimatorState は変換器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は変換器が未学習の状態
	NotFitted EstimatorState = iota
	// Fitted は変換器が学習済みの状態
	Fitted
)

// BaseEstimator は全てのエンコーダ・変換器の基底となる構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は変換器が学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は変換器を学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は変換器を初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
