package model

import "github.com/go-gota/gota/series"

// SeriesTransformer はカラム単位のデータ変換のインターフェース
type SeriesTransformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(s series.Series) error

	// Transform はカラムを変換する
	Transform(s series.Series) (series.Series, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(s series.Series) (series.Series, error)
}
